package controllers

import (
	"log"

	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// respond maps a service result to HTTP: validation failures are 400
// with success:false, infrastructure failures 500. Callers treat
// success:false as the sole failure signal.
func respond(c *fiber.Ctx, result services.Result, err error) error {
	if err != nil {
		log.Printf("store error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(services.Result{
			Success: false,
			Message: "Internal server error",
		})
	}
	if !result.Success {
		return c.Status(400).JSON(result)
	}
	return c.JSON(result)
}

// verifyDeletePasskey checks the confirmation passkey destructive
// actions require before they run.
func verifyDeletePasskey(store *services.Store, attempt string) (bool, error) {
	tree, err := store.Load()
	if err != nil {
		return false, err
	}
	return attempt == tree.Secure.DeletePasskey, nil
}

// DeleteRequest carries the passkey confirmation for destructive calls.
type DeleteRequest struct {
	Passkey string `json:"passkey"`
}

// requireDeletePasskey parses and checks the passkey, returning a
// response error when the caller may not proceed. The bool reports
// whether the request may continue.
func requireDeletePasskey(c *fiber.Ctx, store *services.Store) (bool, error) {
	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil || req.Passkey == "" {
		req.Passkey = c.Query("passkey")
	}

	valid, err := verifyDeletePasskey(store, req.Passkey)
	if err != nil {
		return false, respond(c, services.Result{}, err)
	}
	if !valid {
		return false, c.Status(403).JSON(services.Result{
			Success: false,
			Message: "The delete passkey is incorrect.",
		})
	}
	return true, nil
}
