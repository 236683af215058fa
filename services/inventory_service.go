package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KeshavGarg1234/inventra/models"

	"github.com/shopspring/decimal"
)

// InventoryService implements the item, unit and bill operations.
type InventoryService struct {
	Store *Store
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(store *Store) *InventoryService {
	return &InventoryService{Store: store}
}

// NewItemData is the payload for creating an item.
type NewItemData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemUpdate carries the editable item fields; nil means unchanged.
type ItemUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AddUnitsData is the payload for a batch unit add. The bill is upserted
// in the same save as the units.
type AddUnitsData struct {
	Quantity   int              `json:"quantity"`
	BillNumber string           `json:"billNumber"`
	BillDate   string           `json:"billDate"`
	Company    string           `json:"company"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	LotName    string           `json:"lotName"`
}

// NewBillData is the payload for creating a bill, optionally minting
// units for existing or brand-new items.
type NewBillData struct {
	BillNumber string           `json:"billNumber"`
	Company    string           `json:"company"`
	BillDate   string           `json:"billDate"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Items      []BillItemData   `json:"items"`
}

// BillItemData names one item on a new bill. IsNew items are created on
// the fly; the ID is then a caller-provided placeholder.
type BillItemData struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	IsNew    bool   `json:"isNew"`
}

// AddItem creates an item with an empty unit list. Item names are unique
// case-insensitively.
func (is *InventoryService) AddItem(data NewItemData) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	for _, item := range tree.Items {
		if strings.EqualFold(item.Name, data.Name) {
			return fail("An item named %q already exists.", data.Name), nil
		}
	}

	item := models.Item{
		ID:          fmt.Sprintf("item-%d", time.Now().UnixMilli()),
		Name:        data.Name,
		Description: data.Description,
		SubItems:    []models.SubItem{},
	}
	tree.Items = append([]models.Item{item}, tree.Items...)

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Item %q created.", data.Name)), nil
}

// UpdateItem edits an item's name and description. Units and quantity
// are never touched here.
func (is *InventoryService) UpdateItem(itemID string, update ItemUpdate) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}
	if update.Name != nil {
		for _, other := range tree.Items {
			if other.ID != itemID && strings.EqualFold(other.Name, *update.Name) {
				return fail("An item named %q already exists.", *update.Name), nil
			}
		}
		item.Name = *update.Name
	}
	if update.Description != nil {
		item.Description = *update.Description
	}

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok("Item updated."), nil
}

// DeleteItem removes an item and all its units. Deletion is immediate
// and unconditional; it bypasses the notification workflow.
func (is *InventoryService) DeleteItem(itemID string) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	kept := tree.Items[:0]
	found := false
	for _, item := range tree.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return fail("Item not found."), nil
	}
	tree.Items = kept

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok("Item deleted."), nil
}

// nextSubItemID scans the entire inventory for the maximum numeric unit
// ID. Sequential integers above it keep new IDs globally unique even
// though the scan is O(total units) per batch.
func nextSubItemID(items []models.Item) int {
	maxID := 0
	for _, item := range items {
		for _, sub := range item.SubItems {
			if id, err := strconv.Atoi(sub.ID); err == nil && id > maxID {
				maxID = id
			}
		}
	}
	return maxID + 1
}

// formatUnitID zero-pads a numeric unit ID to 6 digits.
func formatUnitID(id int) string {
	return fmt.Sprintf("%06d", id)
}

// AddUnits appends a batch of Available units to an item, stamped with
// the batch's bill number and lot name, and upserts the bill record.
// Units and bill go out in a single save.
func (is *InventoryService) AddUnits(itemID string, data AddUnitsData) (Result, error) {
	if data.Quantity < 1 {
		return fail("Quantity must be at least 1."), nil
	}

	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	nextID := nextSubItemID(tree.Items)
	for i := 0; i < data.Quantity; i++ {
		item.SubItems = append(item.SubItems, models.SubItem{
			ID:                 formatUnitID(nextID),
			AvailabilityStatus: models.StatusAvailable,
			BillNumber:         data.BillNumber,
			LotName:            data.LotName,
		})
		nextID++
	}
	item.RecountQuantity()

	upsertBill(tree, models.Bill{
		BillNumber: data.BillNumber,
		BillDate:   data.BillDate,
		Company:    data.Company,
		Amount:     data.Amount,
	})

	if err := is.Store.Save(tree, PathItems, PathBills); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Added %d units to %q.", data.Quantity, item.Name)), nil
}

// upsertBill creates the bill if its number is unseen, otherwise updates
// company, date and amount in place.
func upsertBill(tree *models.InventoryTree, bill models.Bill) {
	for i := range tree.Bills {
		if tree.Bills[i].BillNumber == bill.BillNumber {
			tree.Bills[i].Company = bill.Company
			tree.Bills[i].BillDate = bill.BillDate
			if bill.Amount != nil {
				tree.Bills[i].Amount = bill.Amount
			}
			return
		}
	}
	tree.Bills = append([]models.Bill{bill}, tree.Bills...)
}

// DeleteUnit removes a single unit. Immediate and unconditional.
func (is *InventoryService) DeleteUnit(itemID, subItemID string) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	kept := item.SubItems[:0]
	found := false
	for _, sub := range item.SubItems {
		if sub.ID == subItemID {
			found = true
			continue
		}
		kept = append(kept, sub)
	}
	if !found {
		return fail("Unit not found."), nil
	}
	item.SubItems = kept
	item.RecountQuantity()

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok("Unit deleted."), nil
}

// DeleteLot removes every unit of an item that carries the given lot
// name. Immediate and unconditional.
func (is *InventoryService) DeleteLot(itemID, lotName string) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	kept := item.SubItems[:0]
	for _, sub := range item.SubItems {
		if sub.LotName == lotName {
			continue
		}
		kept = append(kept, sub)
	}
	item.SubItems = kept
	item.RecountQuantity()

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Lot %q deleted.", lotName)), nil
}

// AddBill creates a bill and mints units for each listed item, creating
// brand-new items inline when asked. Units minted here use the bill
// number as their lot name.
func (is *InventoryService) AddBill(data NewBillData) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	for _, bill := range tree.Bills {
		if bill.BillNumber == data.BillNumber {
			return fail("Bill with number %q already exists.", data.BillNumber), nil
		}
	}

	tree.Bills = append([]models.Bill{{
		BillNumber: data.BillNumber,
		Company:    data.Company,
		BillDate:   data.BillDate,
		Amount:     data.Amount,
	}}, tree.Bills...)

	nextID := nextSubItemID(tree.Items)
	for _, billItem := range data.Items {
		item := tree.FindItem(billItem.ID)
		if item == nil && billItem.IsNew {
			tree.Items = append([]models.Item{{
				ID:          billItem.ID,
				Name:        billItem.Name,
				Description: fmt.Sprintf("Added with bill %s", data.BillNumber),
				SubItems:    []models.SubItem{},
			}}, tree.Items...)
			item = &tree.Items[0]
		}
		if item == nil {
			continue
		}

		for i := 0; i < billItem.Quantity; i++ {
			item.SubItems = append(item.SubItems, models.SubItem{
				ID:                 formatUnitID(nextID),
				AvailabilityStatus: models.StatusAvailable,
				BillNumber:         data.BillNumber,
				LotName:            data.BillNumber,
			})
			nextID++
		}
		item.RecountQuantity()
	}

	if err := is.Store.Save(tree, PathItems, PathBills); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Bill %q created.", data.BillNumber)), nil
}

// UpdateBill edits a bill. Renaming the bill number propagates to every
// unit carrying it, both as bill number and as lot name.
func (is *InventoryService) UpdateBill(originalBillNumber string, updated models.Bill) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	if originalBillNumber != updated.BillNumber {
		for _, bill := range tree.Bills {
			if bill.BillNumber == updated.BillNumber {
				return fail("A bill with number %q already exists.", updated.BillNumber), nil
			}
		}
	}

	found := false
	for i := range tree.Bills {
		if tree.Bills[i].BillNumber == originalBillNumber {
			tree.Bills[i] = updated
			found = true
			break
		}
	}
	if !found {
		return fail("Bill not found."), nil
	}

	if originalBillNumber != updated.BillNumber {
		for i := range tree.Items {
			for j := range tree.Items[i].SubItems {
				sub := &tree.Items[i].SubItems[j]
				if sub.BillNumber == originalBillNumber {
					sub.BillNumber = updated.BillNumber
				}
				if sub.LotName == originalBillNumber {
					sub.LotName = updated.BillNumber
				}
			}
		}
	}

	if err := is.Store.Save(tree, PathItems, PathBills); err != nil {
		return Result{}, err
	}
	return ok("Bill updated."), nil
}

// DeleteBill removes a bill and every unit that was bought under it,
// recomputing the affected items' quantities.
func (is *InventoryService) DeleteBill(billNumber string) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	kept := tree.Bills[:0]
	found := false
	for _, bill := range tree.Bills {
		if bill.BillNumber == billNumber {
			found = true
			continue
		}
		kept = append(kept, bill)
	}
	if !found {
		return fail("Bill not found."), nil
	}
	tree.Bills = kept

	for i := range tree.Items {
		item := &tree.Items[i]
		keptSubs := item.SubItems[:0]
		for _, sub := range item.SubItems {
			if sub.BillNumber == billNumber {
				continue
			}
			keptSubs = append(keptSubs, sub)
		}
		item.SubItems = keptSubs
		item.RecountQuantity()
	}

	if err := is.Store.Save(tree, PathItems, PathBills); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Bill %q deleted.", billNumber)), nil
}

// AddItemToBill mints additional units of an existing item under an
// existing bill, using the bill number as the lot name.
func (is *InventoryService) AddItemToBill(billNumber, itemID string, quantity int) (Result, error) {
	if quantity < 1 {
		return fail("Quantity must be at least 1."), nil
	}

	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	billExists := false
	for _, bill := range tree.Bills {
		if bill.BillNumber == billNumber {
			billExists = true
			break
		}
	}
	if !billExists {
		return fail("Bill not found."), nil
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	nextID := nextSubItemID(tree.Items)
	for i := 0; i < quantity; i++ {
		item.SubItems = append(item.SubItems, models.SubItem{
			ID:                 formatUnitID(nextID),
			AvailabilityStatus: models.StatusAvailable,
			BillNumber:         billNumber,
			LotName:            billNumber,
		})
		nextID++
	}
	item.RecountQuantity()

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Added %d units of %q to bill %q.", quantity, item.Name, billNumber)), nil
}

// RemoveItemFromBill removes every unit of one item that carries the
// given bill number.
func (is *InventoryService) RemoveItemFromBill(billNumber, itemID string) (Result, error) {
	tree, err := is.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	kept := item.SubItems[:0]
	for _, sub := range item.SubItems {
		if sub.BillNumber == billNumber {
			continue
		}
		kept = append(kept, sub)
	}
	item.SubItems = kept
	item.RecountQuantity()

	if err := is.Store.Save(tree, PathItems); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Removed %q from bill %q.", item.Name, billNumber)), nil
}
