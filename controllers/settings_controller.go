package controllers

import (
	"regexp"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// SettingsController manages the global secure settings: the two
// passkeys and the contact email.
type SettingsController struct {
	Store *services.Store
}

// NewSettingsController creates a new SettingsController.
func NewSettingsController(store *services.Store) *SettingsController {
	return &SettingsController{Store: store}
}

// SettingsResponse carries the secure settings for admins.
type SettingsResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Secure  *models.Secure `json:"secure,omitempty"`
}

// VerifyRequest carries a passkey attempt.
type VerifyRequest struct {
	Passkey string `json:"passkey" validate:"required"`
}

// UpdatePasskeyRequest carries a passkey change.
type UpdatePasskeyRequest struct {
	CurrentPasskey string `json:"currentPasskey" validate:"required"`
	NewPasskey     string `json:"newPasskey" validate:"required,len=6,numeric"`
}

// UpdateContactEmailRequest carries a contact email change.
type UpdateContactEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

var passkeyPattern = regexp.MustCompile(`^\d{6}$`)

// Get returns the secure settings. Admin only; the original exposes the
// passkeys to admins in its settings dialog, so they stay recoverable
// here too.
func (sc *SettingsController) Get(c *fiber.Ctx) error {
	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(SettingsResponse{Success: true, Secure: &tree.Secure})
}

// VerifyDeletePasskey checks a delete passkey attempt; the UI requires
// this confirmation before invoking any destructive action.
func (sc *SettingsController) VerifyDeletePasskey(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	if req.Passkey != tree.Secure.DeletePasskey {
		return c.JSON(services.Result{Success: false, Message: "Incorrect passkey."})
	}
	return c.JSON(services.Result{Success: true})
}

// VerifyAuthPasskey checks an auth passkey attempt.
func (sc *SettingsController) VerifyAuthPasskey(c *fiber.Ctx) error {
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	if req.Passkey != tree.Secure.AuthPasskey {
		return c.JSON(services.Result{Success: false, Message: "Incorrect passkey."})
	}
	return c.JSON(services.Result{Success: true})
}

// UpdateDeletePasskey rotates the delete passkey.
func (sc *SettingsController) UpdateDeletePasskey(c *fiber.Ctx) error {
	var req UpdatePasskeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	if req.CurrentPasskey != tree.Secure.DeletePasskey {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "The current delete passkey is incorrect.",
		})
	}
	if !passkeyPattern.MatchString(req.NewPasskey) {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "New passkey must be a 6-digit number.",
		})
	}

	tree.Secure.DeletePasskey = req.NewPasskey
	if err := sc.Store.Save(tree, services.PathSecure); err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(services.Result{Success: true, Message: "Delete passkey updated."})
}

// UpdateAuthPasskey rotates the auth passkey.
func (sc *SettingsController) UpdateAuthPasskey(c *fiber.Ctx) error {
	var req UpdatePasskeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	if req.CurrentPasskey != tree.Secure.AuthPasskey {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "The current auth passkey is incorrect.",
		})
	}
	if !passkeyPattern.MatchString(req.NewPasskey) {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "New passkey must be a 6-digit number.",
		})
	}

	tree.Secure.AuthPasskey = req.NewPasskey
	if err := sc.Store.Save(tree, services.PathSecure); err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(services.Result{Success: true, Message: "Auth passkey updated."})
}

// UpdateContactEmail changes the support contact address.
func (sc *SettingsController) UpdateContactEmail(c *fiber.Ctx) error {
	var req UpdateContactEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if !emailPattern.MatchString(req.Email) {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Please provide a valid email address.",
		})
	}

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	tree.Secure.ContactEmail = req.Email
	if err := sc.Store.Save(tree, services.PathSecure); err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(services.Result{Success: true, Message: "Contact email updated."})
}
