package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes registers secure settings routes.
func SetupSettingsRoutes(app *fiber.App, settingsController *controllers.SettingsController) {
	settings := app.Group("/api/settings", utils.AuthMiddleware)

	// GET /api/settings - secure settings (admin only)
	settings.Get("/", utils.RequireAction(models.ActionManageSettings), settingsController.Get)

	// POST /api/settings/verify-delete-passkey - confirmation step before destructive actions
	settings.Post("/verify-delete-passkey", settingsController.VerifyDeletePasskey)

	// POST /api/settings/verify-auth-passkey - confirmation step for sensitive views
	settings.Post("/verify-auth-passkey", settingsController.VerifyAuthPasskey)

	// PUT /api/settings/delete-passkey - rotate the delete passkey
	settings.Put("/delete-passkey", utils.RequireAction(models.ActionManageSettings), settingsController.UpdateDeletePasskey)

	// PUT /api/settings/auth-passkey - rotate the auth passkey
	settings.Put("/auth-passkey", utils.RequireAction(models.ActionManageSettings), settingsController.UpdateAuthPasskey)

	// PUT /api/settings/contact-email - change the support contact
	settings.Put("/contact-email", utils.RequireAction(models.ActionManageSettings), settingsController.UpdateContactEmail)
}
