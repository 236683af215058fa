package controllers

import (
	"regexp"
	"strings"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthController handles login, registration requests and the current
// user lookup.
type AuthController struct {
	Store         *services.Store
	Notifications *services.NotificationService
}

// NewAuthController creates a new AuthController.
func NewAuthController(store *services.Store, notifications *services.NotificationService) *AuthController {
	return &AuthController{Store: store, Notifications: notifications}
}

// LoginRequest is the login payload: a directory email plus the shared
// auth passkey.
type LoginRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Passkey string `json:"passkey" validate:"required"`
}

// AuthResponse is the login/me response.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Login checks the email against the directory and the auth passkey
// against the secure settings, and issues a JWT.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	tree, err := ac.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	var user *models.User
	for i := range tree.Users {
		if strings.EqualFold(tree.Users[i].Email, req.Email) {
			user = &tree.Users[i]
			break
		}
	}
	if user == nil || req.Passkey != tree.Secure.AuthPasskey {
		return c.Status(401).JSON(AuthResponse{
			Success: false,
			Message: "Invalid email or passkey",
		})
	}

	token, err := utils.GenerateJWT(user.PersonID, user.Email, user.Role)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{
			Success: false,
			Message: "Failed to create token",
		})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Message: "Logged in successfully",
		Token:   token,
		User:    user,
	})
}

// Register files a registration request pending admin approval. Public:
// the requester has no account yet.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req models.NewUserData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if req.PersonID == "" || req.Name == "" || req.Phone == "" {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Person ID, name and phone are required",
		})
	}
	if !emailPattern.MatchString(req.Email) {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Please provide a valid email address.",
		})
	}

	result, err := ac.Notifications.RequestRegistration(req)
	return respond(c, result, err)
}

// Me returns the directory record of the token holder.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	personID, _ := c.Locals("person_id").(string)

	tree, err := ac.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	for i := range tree.Users {
		if tree.Users[i].PersonID == personID {
			return c.JSON(AuthResponse{Success: true, User: &tree.Users[i]})
		}
	}
	return c.Status(404).JSON(AuthResponse{
		Success: false,
		Message: "User not found.",
	})
}
