package routes

import (
	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupScannerRoutes registers QR scanner routes.
func SetupScannerRoutes(app *fiber.App, scannerController *controllers.ScannerController) {
	scan := app.Group("/api/scan", utils.AuthMiddleware)

	// GET /api/scan/:unitId - resolve a scanned unit ID anywhere in the inventory
	scan.Get("/:unitId", scannerController.Lookup)

	// GET /api/scan/:unitId/qr - PNG QR label for the unit
	scan.Get("/:unitId/qr", scannerController.QR)
}
