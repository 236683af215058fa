package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardController serves the overview counts and the full tree
// mirror the UI keeps in sync.
type DashboardController struct {
	Store *services.Store
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(store *services.Store) *DashboardController {
	return &DashboardController{Store: store}
}

// DashboardStats are the overview counts.
type DashboardStats struct {
	Items                int `json:"items"`
	TotalUnits           int `json:"totalUnits"`
	AvailableUnits       int `json:"availableUnits"`
	InUseUnits           int `json:"inUseUnits"`
	DiscardedUnits       int `json:"discardedUnits"`
	Bills                int `json:"bills"`
	Users                int `json:"users"`
	PendingNotifications int `json:"pendingNotifications"`
}

// DashboardResponse is the overview response.
type DashboardResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Stats   DashboardStats `json:"stats"`
}

// TreeResponse mirrors the readable tree for subscribed clients. Secure
// settings are not part of it.
type TreeResponse struct {
	Success       bool                  `json:"success"`
	Items         []models.Item         `json:"items"`
	Bills         []models.Bill         `json:"bills"`
	Users         []models.User         `json:"users"`
	Notifications []models.Notification `json:"notifications"`
}

// GetDashboard returns the overview counts.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	tree, err := dc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	stats := DashboardStats{
		Items: len(tree.Items),
		Bills: len(tree.Bills),
		Users: len(tree.Users),
	}
	for _, item := range tree.Items {
		for _, sub := range item.SubItems {
			stats.TotalUnits++
			switch sub.AvailabilityStatus {
			case models.StatusAvailable:
				stats.AvailableUnits++
			case models.StatusInUse:
				stats.InUseUnits++
			case models.StatusDiscarded:
				stats.DiscardedUnits++
			}
		}
	}
	for _, n := range tree.Notifications {
		if n.Status == models.NotificationPending {
			stats.PendingNotifications++
		}
	}

	return c.JSON(DashboardResponse{Success: true, Stats: stats})
}

// GetData returns the whole readable tree in one response; clients
// re-fetch it when the hub reports stale paths.
func (dc *DashboardController) GetData(c *fiber.Ctx) error {
	tree, err := dc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	return c.JSON(TreeResponse{
		Success:       true,
		Items:         tree.Items,
		Bills:         tree.Bills,
		Users:         tree.Users,
		Notifications: tree.Notifications,
	})
}
