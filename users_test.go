package main

import (
	"net/http"
	"testing"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserGetsLowestRole(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)

	resp := doRequest(t, app, "POST", "/api/users/", token, map[string]string{
		"personId": "EMP100",
		"name":     "New Person",
		"email":    "new@example.com",
		"phone":    "9000000000",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Len(t, tree.Users, 1)
	assert.Equal(t, models.RoleD, tree.Users[0].Role)
	assert.NotEmpty(t, tree.Users[0].JoiningDate)
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})

	resp := doRequest(t, app, "POST", "/api/users/", token, map[string]string{
		"personId": "EMP100",
		"name":     "New Person",
		"email":    "ADMIN@EXAMPLE.COM",
		"phone":    "9000000000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body services.Result
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Message, "already exists")
}

func TestRegisterConflictsWithPendingRequest(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"personId": "EMP100",
		"name":     "First",
		"email":    "dup@example.com",
		"phone":    "9000000000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A second request reusing the email must fail while the first is
	// still pending.
	resp = doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"personId": "EMP101",
		"name":     "Second",
		"email":    "dup@example.com",
		"phone":    "9111111111",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body services.Result
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Message, "registration request")
}

func TestUpdateUserReconcilesAssignmentSnapshots(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Users: []models.User{{
			PersonID: "EMP1", Name: "Old Name", Email: "emp1@example.com",
			Phone: "9000000000", Role: models.RoleD, JoiningDate: "2024-01-01T00:00:00Z",
		}},
		Items: []models.Item{
			{ID: "item-1", Name: "Laptop", TotalQuantity: 1, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusInUse, AssignedTo: &models.AssignmentDetails{
					PersonID: "EMP1", Name: "Old Name", Email: "emp1@example.com",
					Phone: "9000000000", AssignmentDate: "2024-06-01T00:00:00Z",
				}},
			}},
		},
	})

	resp := doRequest(t, app, "PUT", "/api/users/EMP1", token, map[string]string{
		"personId": "EMP1",
		"name":     "New Name",
		"email":    "renamed@example.com",
		"phone":    "9000000000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Equal(t, "New Name", tree.Users[0].Name)
	// Role survives an update that does not set it.
	assert.Equal(t, models.RoleD, tree.Users[0].Role)

	assigned := tree.FindItem("item-1").SubItems[0].AssignedTo
	assert.Equal(t, "New Name", assigned.Name)
	assert.Equal(t, "renamed@example.com", assigned.Email)
	// The assignment date is part of the assignment, not the identity.
	assert.Equal(t, "2024-06-01T00:00:00Z", assigned.AssignmentDate)
}

func TestDeleteUserFreesAssignedUnits(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Users: []models.User{{
			PersonID: "EMP1", Name: "Holder", Email: "emp1@example.com",
			Phone: "9000000000", Role: models.RoleD, JoiningDate: "2024-01-01T00:00:00Z",
		}},
		Items: []models.Item{
			{ID: "item-1", Name: "Laptop", TotalQuantity: 2, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusInUse, AssignedTo: &models.AssignmentDetails{
					PersonID: "EMP1", Name: "Holder", AssignmentDate: "2024-06-01T00:00:00Z",
				}},
				{ID: "000002", AvailabilityStatus: models.StatusDiscarded, DiscardedDate: "2024-07-01T00:00:00Z"},
			}},
		},
	})

	resp := doRequest(t, app, "DELETE", "/api/users/EMP1?passkey="+services.DefaultDeletePasskey, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Empty(t, tree.Users)

	subs := tree.FindItem("item-1").SubItems
	assert.Equal(t, models.StatusAvailable, subs[0].AvailabilityStatus)
	assert.Nil(t, subs[0].AssignedTo)
	// Unrelated units are untouched.
	assert.Equal(t, models.StatusDiscarded, subs[1].AvailabilityStatus)
}

func TestGetUserListsAssignedUnits(t *testing.T) {
	app, store := setupTestApp(t)
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)
	seedTree(t, store, &models.InventoryTree{
		Users: []models.User{{
			PersonID: "EMP1", Name: "Holder", Email: "emp1@example.com",
			Phone: "9000000000", Role: models.RoleD, JoiningDate: "2024-01-01T00:00:00Z",
		}},
		Items: []models.Item{
			{ID: "item-1", Name: "Laptop", TotalQuantity: 1, SubItems: []models.SubItem{
				{ID: "000001", AvailabilityStatus: models.StatusInUse, AssignedTo: &models.AssignmentDetails{
					PersonID: "EMP1", Name: "Holder", AssignmentDate: "2024-06-01T00:00:00Z",
				}},
			}},
		},
	})

	resp := doRequest(t, app, "GET", "/api/users/EMP1", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success       bool         `json:"success"`
		User          *models.User `json:"user"`
		AssignedUnits []struct {
			ItemID   string `json:"itemId"`
			ItemName string `json:"itemName"`
			UnitID   string `json:"unitId"`
		} `json:"assignedUnits"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Len(t, body.AssignedUnits, 1)
	assert.Equal(t, "Laptop", body.AssignedUnits[0].ItemName)
	assert.Equal(t, "000001", body.AssignedUnits[0].UnitID)
}
