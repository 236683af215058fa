package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes registers approval workflow routes.
func SetupNotificationRoutes(app *fiber.App, notificationController *controllers.NotificationController) {
	notifications := app.Group("/api/notifications", utils.AuthMiddleware)

	// GET /api/notifications - list requests, optional ?status= filter
	notifications.Get("/", utils.RequireAction(models.ActionHandleNotifications), notificationController.List)

	// PUT /api/notifications/:id - approve or reject a pending request
	notifications.Put("/:id", utils.RequireAction(models.ActionHandleNotifications), notificationController.Handle)
}
