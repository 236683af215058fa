package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupUnitRoutes registers unit routes: batch adds, unconditional
// deletes and the approval-workflow requests.
func SetupUnitRoutes(app *fiber.App, unitController *controllers.UnitController) {
	items := app.Group("/api/items", utils.AuthMiddleware)

	// POST /api/items/:id/units - batch add units + bill upsert
	items.Post("/:id/units", utils.RequireAction(models.ActionManageInventory), unitController.AddUnits)

	// DELETE /api/items/:id/units/:unitId - unconditional delete, passkey confirmed
	items.Delete("/:id/units/:unitId", utils.RequireAction(models.ActionDeleteRecords), unitController.DeleteUnit)

	// DELETE /api/items/:id/lots/:lotName - delete a whole lot, passkey confirmed
	items.Delete("/:id/lots/:lotName", utils.RequireAction(models.ActionDeleteRecords), unitController.DeleteLot)

	// POST /api/items/:id/units/:unitId/allot - file a pending allot request
	items.Post("/:id/units/:unitId/allot", utils.RequireAction(models.ActionRequestChanges), unitController.RequestAllotment)

	// POST /api/items/:id/units/:unitId/request - file unallot/discard/restore
	items.Post("/:id/units/:unitId/request", utils.RequireAction(models.ActionRequestChanges), unitController.RequestStatusChange)
}
