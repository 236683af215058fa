package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupItemRoutes registers item catalogue routes.
func SetupItemRoutes(app *fiber.App, itemController *controllers.ItemController) {
	items := app.Group("/api/items", utils.AuthMiddleware)

	// GET /api/items - list items with their units
	items.Get("/", itemController.List)

	// GET /api/items/:id - one item
	items.Get("/:id", itemController.Get)

	// POST /api/items - create an item
	items.Post("/", utils.RequireAction(models.ActionManageInventory), itemController.Create)

	// PUT /api/items/:id - edit name/description
	items.Put("/:id", utils.RequireAction(models.ActionManageInventory), itemController.Update)

	// DELETE /api/items/:id - unconditional delete, passkey confirmed
	items.Delete("/:id", utils.RequireAction(models.ActionDeleteRecords), itemController.Delete)
}
