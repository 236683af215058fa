package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// NotificationController exposes the approval workflow.
type NotificationController struct {
	Store         *services.Store
	Notifications *services.NotificationService
}

// NewNotificationController creates a new NotificationController.
func NewNotificationController(store *services.Store, notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Store: store, Notifications: notifications}
}

// NotificationsResponse is the list response.
type NotificationsResponse struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message,omitempty"`
	Notifications []models.Notification `json:"notifications"`
}

// HandleRequest carries the action for a pending notification.
type HandleRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

// List returns every notification, newest first, optionally filtered by
// status.
func (nc *NotificationController) List(c *fiber.Ctx) error {
	tree, err := nc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	status := c.Query("status")
	if status == "" {
		return c.JSON(NotificationsResponse{Success: true, Notifications: tree.Notifications})
	}

	filtered := make([]models.Notification, 0, len(tree.Notifications))
	for _, n := range tree.Notifications {
		if n.Status == status {
			filtered = append(filtered, n)
		}
	}
	return c.JSON(NotificationsResponse{Success: true, Notifications: filtered})
}

// Handle approves or rejects a pending notification.
func (nc *NotificationController) Handle(c *fiber.Ctx) error {
	var req HandleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	result, err := nc.Notifications.HandleAction(c.Params("id"), req.Action)
	return respond(c, result, err)
}
