package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupBillRoutes registers purchase bill routes.
func SetupBillRoutes(app *fiber.App, billController *controllers.BillController) {
	bills := app.Group("/api/bills", utils.AuthMiddleware)

	// GET /api/bills - list bills
	bills.Get("/", billController.List)

	// GET /api/bills/:billNumber - one bill with its units grouped by item
	bills.Get("/:billNumber", billController.Get)

	// POST /api/bills - create a bill, minting units for listed items
	bills.Post("/", utils.RequireAction(models.ActionManageInventory), billController.Create)

	// PUT /api/bills/:billNumber - edit; renames propagate to units
	bills.Put("/:billNumber", utils.RequireAction(models.ActionManageInventory), billController.Update)

	// DELETE /api/bills/:billNumber - cascade delete, passkey confirmed
	bills.Delete("/:billNumber", utils.RequireAction(models.ActionDeleteRecords), billController.Delete)

	// POST /api/bills/:billNumber/items - mint more units under the bill
	bills.Post("/:billNumber/items", utils.RequireAction(models.ActionManageInventory), billController.AddItem)

	// DELETE /api/bills/:billNumber/items/:itemId - drop an item's units from the bill
	bills.Delete("/:billNumber/items/:itemId", utils.RequireAction(models.ActionDeleteRecords), billController.RemoveItem)
}
