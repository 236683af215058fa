package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// BillController handles purchase bills.
type BillController struct {
	Store     *services.Store
	Inventory *services.InventoryService
}

// NewBillController creates a new BillController.
func NewBillController(store *services.Store, inventory *services.InventoryService) *BillController {
	return &BillController{Store: store, Inventory: inventory}
}

// BillsResponse is the list response.
type BillsResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Bills   []models.Bill `json:"bills"`
}

// BillUnits groups the units one item holds under a bill.
type BillUnits struct {
	ItemID   string   `json:"itemId"`
	ItemName string   `json:"itemName"`
	UnitIDs  []string `json:"unitIds"`
}

// BillDetailResponse is the single-bill response with its units grouped
// by item.
type BillDetailResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Bill    *models.Bill `json:"bill,omitempty"`
	Items   []BillUnits  `json:"items,omitempty"`
}

// List returns every bill.
func (bc *BillController) List(c *fiber.Ctx) error {
	tree, err := bc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(BillsResponse{Success: true, Bills: tree.Bills})
}

// Get returns one bill plus the units bought under it, grouped by item.
func (bc *BillController) Get(c *fiber.Ctx) error {
	billNumber := c.Params("billNumber")

	tree, err := bc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	var bill *models.Bill
	for i := range tree.Bills {
		if tree.Bills[i].BillNumber == billNumber {
			bill = &tree.Bills[i]
			break
		}
	}
	if bill == nil {
		return c.Status(404).JSON(BillDetailResponse{
			Success: false,
			Message: "Bill not found.",
		})
	}

	var groups []BillUnits
	for _, item := range tree.Items {
		var unitIDs []string
		for _, sub := range item.SubItems {
			if sub.BillNumber == billNumber {
				unitIDs = append(unitIDs, sub.ID)
			}
		}
		if len(unitIDs) > 0 {
			groups = append(groups, BillUnits{ItemID: item.ID, ItemName: item.Name, UnitIDs: unitIDs})
		}
	}

	return c.JSON(BillDetailResponse{Success: true, Bill: bill, Items: groups})
}

// Create adds a bill, minting units for its listed items.
func (bc *BillController) Create(c *fiber.Ctx) error {
	var req services.NewBillData
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

	result, err := bc.Inventory.AddBill(req)
	if err == nil && result.Success {
		return c.Status(201).JSON(result)
	}
	return respond(c, result, err)
}

// Update edits a bill; a bill number rename propagates to its units.
func (bc *BillController) Update(c *fiber.Ctx) error {
	var req models.Bill
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

	result, err := bc.Inventory.UpdateBill(c.Params("billNumber"), req)
	return respond(c, result, err)
}

// Delete removes a bill and every unit bought under it. Passkey
// confirmed.
func (bc *BillController) Delete(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, bc.Store); !proceed {
		return resp
	}

	result, err := bc.Inventory.DeleteBill(c.Params("billNumber"))
	return respond(c, result, err)
}

// AddItemRequest names an item and quantity to mint under a bill.
type AddItemRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// AddItem mints more units of an existing item under this bill.
func (bc *BillController) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}

	result, err := bc.Inventory.AddItemToBill(c.Params("billNumber"), req.ItemID, req.Quantity)
	return respond(c, result, err)
}

// RemoveItem removes every unit of one item carrying this bill. Passkey
// confirmed.
func (bc *BillController) RemoveItem(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, bc.Store); !proceed {
		return resp
	}

	result, err := bc.Inventory.RemoveItemFromBill(c.Params("billNumber"), c.Params("itemId"))
	return respond(c, result, err)
}
