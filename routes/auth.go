package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers authentication routes.
func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	auth := app.Group("/api/auth")

	// POST /api/auth/login - exchange email + auth passkey for a JWT (public)
	auth.Post("/login", authController.Login)

	// POST /api/auth/register - file a registration request (public, pre-account)
	auth.Post("/register", authController.Register)

	// GET /api/auth/me - directory record of the token holder
	auth.Get("/me", utils.AuthMiddleware, authController.Me)
}
