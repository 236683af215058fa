package controllers

import (
	"time"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// UnitController handles serialized units: batch adds, unconditional
// deletes and the requests that feed the approval workflow.
type UnitController struct {
	Store         *services.Store
	Inventory     *services.InventoryService
	Notifications *services.NotificationService
}

// NewUnitController creates a new UnitController.
func NewUnitController(store *services.Store, inventory *services.InventoryService, notifications *services.NotificationService) *UnitController {
	return &UnitController{Store: store, Inventory: inventory, Notifications: notifications}
}

// AddUnits appends a batch of units to an item and upserts the bill in
// the same save.
func (uc *UnitController) AddUnits(c *fiber.Ctx) error {
	var req services.AddUnitsData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.BillNumber == "" {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Bill number is required",
		})
	}

	result, err := uc.Inventory.AddUnits(c.Params("id"), req)
	if err == nil && result.Success {
		return c.Status(201).JSON(result)
	}
	return respond(c, result, err)
}

// DeleteUnit removes one unit. Passkey confirmed, bypasses the workflow.
func (uc *UnitController) DeleteUnit(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, uc.Store); !proceed {
		return resp
	}

	result, err := uc.Inventory.DeleteUnit(c.Params("id"), c.Params("unitId"))
	return respond(c, result, err)
}

// DeleteLot removes every unit of a lot. Passkey confirmed, bypasses the
// workflow.
func (uc *UnitController) DeleteLot(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, uc.Store); !proceed {
		return resp
	}

	result, err := uc.Inventory.DeleteLot(c.Params("id"), c.Params("lotName"))
	return respond(c, result, err)
}

// RequestAllotment files a pending allot request for a unit.
func (uc *UnitController) RequestAllotment(c *fiber.Ctx) error {
	var req models.AssignmentDetails
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.PersonID == "" || req.Name == "" {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Assignee person ID and name are required",
		})
	}
	if req.AssignmentDate == "" {
		req.AssignmentDate = time.Now().UTC().Format(time.RFC3339)
	}

	result, err := uc.Notifications.RequestAllotment(c.Params("id"), c.Params("unitId"), req)
	return respond(c, result, err)
}

// StatusChangeRequest is the payload for unallot/discard/restore
// requests.
type StatusChangeRequest struct {
	Type string `json:"type" validate:"required,oneof=unallot discard restore"`
}

// RequestStatusChange files a pending unallot, discard or restore
// request. The requester identity comes from the token, for audit.
func (uc *UnitController) RequestStatusChange(c *fiber.Ctx) error {
	var req StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	requester := uc.requesterFromToken(c)
	result, err := uc.Notifications.RequestStatusChange(c.Params("id"), c.Params("unitId"), req.Type, requester)
	return respond(c, result, err)
}

// requesterFromToken resolves the caller's directory record into a
// requester identity. Nil when the record is gone; the request is still
// filed.
func (uc *UnitController) requesterFromToken(c *fiber.Ctx) *models.Requester {
	personID, _ := c.Locals("person_id").(string)
	if personID == "" {
		return nil
	}

	tree, err := uc.Store.Load()
	if err != nil {
		return nil
	}
	for _, user := range tree.Users {
		if user.PersonID == personID {
			return &models.Requester{PersonID: user.PersonID, Name: user.Name}
		}
	}
	return nil
}
