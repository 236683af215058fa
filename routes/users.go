package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers user directory routes.
func SetupUserRoutes(app *fiber.App, userController *controllers.UserController) {
	users := app.Group("/api/users", utils.AuthMiddleware)

	// GET /api/users - list the directory
	users.Get("/", userController.List)

	// GET /api/users/:personId - one user with their assigned units
	users.Get("/:personId", userController.Get)

	// POST /api/users - add a user directly (no approval workflow)
	users.Post("/", utils.RequireAction(models.ActionManageUsers), userController.Create)

	// PUT /api/users/:personId - edit; identity changes reconcile assignment snapshots
	users.Put("/:personId", utils.RequireAction(models.ActionManageUsers), userController.Update)

	// DELETE /api/users/:personId - frees assigned units, passkey confirmed
	users.Delete("/:personId", utils.RequireAction(models.ActionDeleteRecords), userController.Delete)
}
