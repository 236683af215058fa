package main

import (
	"log"
	"os"
	"time"

	"github.com/KeshavGarg1234/inventra/controllers"
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/routes"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	db, err := models.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	hub := services.NewHub()
	go hub.Run()

	app := buildApp(db, hub)

	// WebSocket route for the live tree subscription.
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		hub.HandleWebSocket(c)
	}))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

// buildApp wires the Fiber application. Shared with the integration
// tests so they exercise the real middleware chain.
func buildApp(db *gorm.DB, notifier services.Notifier) *fiber.App {
	store := services.NewStore(db, notifier)

	// Warm load seeds the secure setting defaults on a fresh database.
	if _, err := store.Load(); err != nil {
		log.Printf("Warning: initial tree load failed: %v", err)
	}

	inventoryService := services.NewInventoryService(store)
	userService := services.NewUserService(store)
	notificationService := services.NewNotificationService(store)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	authController := controllers.NewAuthController(store, notificationService)
	itemController := controllers.NewItemController(store, inventoryService)
	unitController := controllers.NewUnitController(store, inventoryService, notificationService)
	billController := controllers.NewBillController(store, inventoryService)
	userController := controllers.NewUserController(store, userService)
	notificationController := controllers.NewNotificationController(store, notificationService)
	settingsController := controllers.NewSettingsController(store)
	dashboardController := controllers.NewDashboardController(store)
	scannerController := controllers.NewScannerController(store)

	routes.SetupAuthRoutes(app, authController)
	routes.SetupItemRoutes(app, itemController)
	routes.SetupUnitRoutes(app, unitController)
	routes.SetupBillRoutes(app, billController)
	routes.SetupUserRoutes(app, userController)
	routes.SetupNotificationRoutes(app, notificationController)
	routes.SetupSettingsRoutes(app, settingsController)
	routes.SetupDashboardRoutes(app, dashboardController)
	routes.SetupScannerRoutes(app, scannerController)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"message":   "Inventra backend is running",
			"timestamp": time.Now().Unix(),
		})
	})

	return app
}
