package main

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/KeshavGarg1234/inventra/models"

	"github.com/stretchr/testify/assert"
)

func TestDashboardCounts(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Items: []models.Item{
			{ID: "item-1", Name: "Laptop", TotalQuantity: 3, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusAvailable},
				{ID: "000002", AvailabilityStatus: models.StatusInUse},
				{ID: "000003", AvailabilityStatus: models.StatusDiscarded},
			}},
			{ID: "item-2", Name: "Mouse", TotalQuantity: 1, SubItems: []models.SubItem{
				{ID: "000004", AvailabilityStatus: models.StatusAvailable},
			}},
		},
		Bills: []models.Bill{{BillNumber: "B100", Company: "Acme Supplies", BillDate: "2025-01-01"}},
		Users: []models.User{adminUser()},
		Notifications: []models.Notification{
			{ID: "notif-1", Type: models.NotificationAllot, Status: models.NotificationPending, CreatedAt: "2025-01-02T00:00:00Z"},
			{ID: "notif-2", Type: models.NotificationAllot, Status: models.NotificationRejected, CreatedAt: "2025-01-01T00:00:00Z"},
		},
	})

	resp := doRequest(t, app, "GET", "/api/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Stats   struct {
			Items                int `json:"items"`
			TotalUnits           int `json:"totalUnits"`
			AvailableUnits       int `json:"availableUnits"`
			InUseUnits           int `json:"inUseUnits"`
			DiscardedUnits       int `json:"discardedUnits"`
			Bills                int `json:"bills"`
			Users                int `json:"users"`
			PendingNotifications int `json:"pendingNotifications"`
		} `json:"stats"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Stats.Items)
	assert.Equal(t, 4, body.Stats.TotalUnits)
	assert.Equal(t, 2, body.Stats.AvailableUnits)
	assert.Equal(t, 1, body.Stats.InUseUnits)
	assert.Equal(t, 1, body.Stats.DiscardedUnits)
	assert.Equal(t, 1, body.Stats.Bills)
	assert.Equal(t, 1, body.Stats.Users)
	assert.Equal(t, 1, body.Stats.PendingNotifications)
}

func TestDataExcludesSecureSettings(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})

	resp := doRequest(t, app, "GET", "/api/data", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()

	var payload map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "items")
	assert.Contains(t, payload, "users")
	assert.NotContains(t, payload, "secure")
	assert.NotContains(t, string(raw), "deletePasskey")
}

func TestHealth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
