package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// ItemController handles the item catalogue.
type ItemController struct {
	Store     *services.Store
	Inventory *services.InventoryService
}

// NewItemController creates a new ItemController.
func NewItemController(store *services.Store, inventory *services.InventoryService) *ItemController {
	return &ItemController{Store: store, Inventory: inventory}
}

// ItemsResponse is the list response.
type ItemsResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Items   []models.Item `json:"items"`
}

// ItemResponse is the single-item response.
type ItemResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Item    *models.Item `json:"item,omitempty"`
}

// List returns every item with its units.
func (ic *ItemController) List(c *fiber.Ctx) error {
	tree, err := ic.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(ItemsResponse{Success: true, Items: tree.Items})
}

// Get returns one item.
func (ic *ItemController) Get(c *fiber.Ctx) error {
	tree, err := ic.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	item := tree.FindItem(c.Params("id"))
	if item == nil {
		return c.Status(404).JSON(ItemResponse{
			Success: false,
			Message: "Item not found.",
		})
	}
	return c.JSON(ItemResponse{Success: true, Item: item})
}

// Create adds a new item.
func (ic *ItemController) Create(c *fiber.Ctx) error {
	var req services.NewItemData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Item name is required",
		})
	}

	result, err := ic.Inventory.AddItem(req)
	if err == nil && result.Success {
		return c.Status(201).JSON(result)
	}
	return respond(c, result, err)
}

// Update edits an item's name and description.
func (ic *ItemController) Update(c *fiber.Ctx) error {
	var req services.ItemUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	result, err := ic.Inventory.UpdateItem(c.Params("id"), req)
	return respond(c, result, err)
}

// Delete removes an item and all its units. Passkey confirmed,
// unconditional, no approval workflow.
func (ic *ItemController) Delete(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, ic.Store); !proceed {
		return resp
	}

	result, err := ic.Inventory.DeleteItem(c.Params("id"))
	return respond(c, result, err)
}
