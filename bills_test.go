package main

import (
	"net/http"
	"testing"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateBillWithNewItem(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)

	amount := decimal.NewFromInt(4500)
	resp := doRequest(t, app, "POST", "/api/bills/", token, map[string]interface{}{
		"billNumber": "B200",
		"company":    "Acme Supplies",
		"billDate":   "2025-02-01",
		"amount":     amount,
		"items": []map[string]interface{}{
			{"id": "item-new-1", "name": "Monitor", "quantity": 2, "isNew": true},
		},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Len(t, tree.Bills, 1)
	assert.True(t, amount.Equal(*tree.Bills[0].Amount))

	item := tree.FindItem("item-new-1")
	assert.NotNil(t, item)
	assert.Equal(t, "Monitor", item.Name)
	assert.Equal(t, 2, item.TotalQuantity)
	// Units minted through a bill use the bill number as the lot name.
	assert.Equal(t, "B200", item.SubItems[0].LotName)
	assert.Equal(t, "B200", item.SubItems[0].BillNumber)
}

func TestCreateBillDuplicateNumber(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{Bills: []models.Bill{
		{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"},
	}})

	resp := doRequest(t, app, "POST", "/api/bills/", token, map[string]interface{}{
		"billNumber": "B200",
		"company":    "Other Co",
		"billDate":   "2025-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body services.Result
	decodeBody(t, resp, &body)
	assert.Equal(t, `Bill with number "B200" already exists.`, body.Message)
}

func TestUpdateBillRenamePropagatesToUnits(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Bills: []models.Bill{{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"}},
		Items: []models.Item{
			{ID: "item-1", Name: "Monitor", TotalQuantity: 2, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200", LotName: "B200"},
				{ID: "000002", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200", LotName: "Special"},
			}},
		},
	})

	resp := doRequest(t, app, "PUT", "/api/bills/B200", token, map[string]interface{}{
		"billNumber": "B201",
		"company":    "Acme Supplies",
		"billDate":   "2025-02-01",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Equal(t, "B201", tree.Bills[0].BillNumber)

	item := tree.FindItem("item-1")
	assert.Equal(t, "B201", item.SubItems[0].BillNumber)
	// Lot names matching the old bill number follow the rename; custom
	// lot names stay.
	assert.Equal(t, "B201", item.SubItems[0].LotName)
	assert.Equal(t, "Special", item.SubItems[1].LotName)
}

func TestDeleteBillCascadesToUnits(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Bills: []models.Bill{{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"}},
		Items: []models.Item{
			{ID: "item-1", Name: "Monitor", TotalQuantity: 3, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200"},
				{ID: "000002", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200"},
				{ID: "000003", AvailabilityStatus: models.StatusAvailable, BillNumber: "B999"},
			}},
		},
	})

	resp := doRequest(t, app, "DELETE", "/api/bills/B200?passkey="+services.DefaultDeletePasskey, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Empty(t, tree.Bills)

	item := tree.FindItem("item-1")
	assert.Equal(t, 1, item.TotalQuantity)
	assert.Equal(t, "000003", item.SubItems[0].ID)
}

func TestAddItemToBill(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Bills: []models.Bill{{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"}},
		Items: []models.Item{{ID: "item-1", Name: "Monitor", SubItems: []models.SubItem{}}},
	})

	resp := doRequest(t, app, "POST", "/api/bills/B200/items", token, map[string]interface{}{
		"itemId":   "item-1",
		"quantity": 2,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	item := tree.FindItem("item-1")
	assert.Equal(t, 2, item.TotalQuantity)
	assert.Equal(t, "B200", item.SubItems[0].BillNumber)
}

func TestRemoveItemFromBill(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Bills: []models.Bill{{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"}},
		Items: []models.Item{
			{ID: "item-1", Name: "Monitor", TotalQuantity: 2, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200"},
				{ID: "000002", AvailabilityStatus: models.StatusAvailable, BillNumber: "B999"},
			}},
		},
	})

	resp := doRequest(t, app, "DELETE", "/api/bills/B200/items/item-1?passkey="+services.DefaultDeletePasskey, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	item := tree.FindItem("item-1")
	assert.Equal(t, 1, item.TotalQuantity)
	assert.Equal(t, "000002", item.SubItems[0].ID)
}

func TestGetBillGroupsUnitsByItem(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Bills: []models.Bill{{BillNumber: "B200", Company: "Acme Supplies", BillDate: "2025-02-01"}},
		Items: []models.Item{
			{ID: "item-1", Name: "Monitor", TotalQuantity: 2, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200"},
				{ID: "000002", AvailabilityStatus: models.StatusAvailable, BillNumber: "B200"},
			}},
		},
	})

	resp := doRequest(t, app, "GET", "/api/bills/B200", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool        `json:"success"`
		Bill    models.Bill `json:"bill"`
		Items   []struct {
			ItemID   string   `json:"itemId"`
			ItemName string   `json:"itemName"`
			UnitIDs  []string `json:"unitIds"`
		} `json:"items"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "B200", body.Bill.BillNumber)
	assert.Len(t, body.Items, 1)
	assert.Equal(t, "Monitor", body.Items[0].ItemName)
	assert.Equal(t, []string{"000001", "000002"}, body.Items[0].UnitIDs)
}
