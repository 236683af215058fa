package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes registers the overview and tree mirror routes.
func SetupDashboardRoutes(app *fiber.App, dashboardController *controllers.DashboardController) {
	api := app.Group("/api", utils.AuthMiddleware)

	// GET /api/dashboard - overview counts
	api.Get("/dashboard", dashboardController.GetDashboard)

	// GET /api/data - the whole readable tree (secure settings excluded)
	api.Get("/data", dashboardController.GetData)
}
