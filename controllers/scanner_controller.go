package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

// ScannerController resolves scanned unit IDs and renders the QR labels
// that get scanned in the first place.
type ScannerController struct {
	Store *services.Store
}

// NewScannerController creates a new ScannerController.
func NewScannerController(store *services.Store) *ScannerController {
	return &ScannerController{Store: store}
}

// ScanResponse is the unit lookup response.
type ScanResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message,omitempty"`
	Unit     *models.SubItem `json:"unit,omitempty"`
	ItemID   string          `json:"itemId,omitempty"`
	ItemName string          `json:"itemName,omitempty"`
}

// Lookup finds a unit anywhere in the inventory by its scanned ID.
func (sc *ScannerController) Lookup(c *fiber.Ctx) error {
	unitID := c.Params("unitId")

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	for i := range tree.Items {
		item := &tree.Items[i]
		if sub := item.FindSubItem(unitID); sub != nil {
			return c.JSON(ScanResponse{
				Success:  true,
				Unit:     sub,
				ItemID:   item.ID,
				ItemName: item.Name,
			})
		}
	}

	return c.Status(404).JSON(ScanResponse{
		Success: false,
		Message: "No unit found with ID " + unitID + ".",
	})
}

// QR renders the PNG QR code for a unit label. Only existing units get a
// label.
func (sc *ScannerController) QR(c *fiber.Ctx) error {
	unitID := c.Params("unitId")

	tree, err := sc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	found := false
	for i := range tree.Items {
		if tree.Items[i].FindSubItem(unitID) != nil {
			found = true
			break
		}
	}
	if !found {
		return c.Status(404).JSON(ScanResponse{
			Success: false,
			Message: "No unit found with ID " + unitID + ".",
		})
	}

	png, err := qrcode.Encode(unitID, qrcode.Medium, 256)
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
