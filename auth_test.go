package main

import (
	"net/http"
	"testing"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/stretchr/testify/assert"
)

func TestLoginSuccess(t *testing.T) {
	app, store := setupTestApp(t)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":   "admin@example.com",
		"passkey": services.DefaultAuthPasskey,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool         `json:"success"`
		Token   string       `json:"token"`
		User    *models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "ADMIN1", body.User.PersonID)
	assert.Equal(t, models.RoleA, body.User.Role)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	app, store := setupTestApp(t)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":   "ADMIN@Example.COM",
		"passkey": services.DefaultAuthPasskey,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPasskey(t *testing.T) {
	app, store := setupTestApp(t)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":   "admin@example.com",
		"passkey": "000000",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body services.Result
	decodeBody(t, resp, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid email or passkey", body.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/login", "", map[string]string{
		"email":   "nobody@example.com",
		"passkey": services.DefaultAuthPasskey,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	app, store := setupTestApp(t)
	seedTree(t, store, &models.InventoryTree{Users: []models.User{adminUser()}})
	token := testToken(t, "ADMIN1", "admin@example.com", models.RoleA)

	resp := doRequest(t, app, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool         `json:"success"`
		User    *models.User `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Admin One", body.User.Name)
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"personId": "EMP100",
		"name":     "New Person",
		"phone":    "9000000000",
		"email":    "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterFilesPendingNotification(t *testing.T) {
	app, store := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/api/auth/register", "", map[string]string{
		"personId": "EMP100",
		"name":     "New Person",
		"phone":    "9000000000",
		"email":    "new@example.com",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	tree := loadTree(t, store)
	assert.Len(t, tree.Notifications, 1)
	assert.Equal(t, models.NotificationRegister, tree.Notifications[0].Type)
	assert.Equal(t, models.NotificationPending, tree.Notifications[0].Status)
	assert.Equal(t, "EMP100", tree.Notifications[0].RequestedData.NewUser.PersonID)
}

func TestRoleDCannotHandleNotifications(t *testing.T) {
	app, _ := setupTestApp(t)
	token := testToken(t, "EMP1", "emp@example.com", models.RoleD)

	resp := doRequest(t, app, "GET", "/api/notifications/", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRoleCCannotManageUsers(t *testing.T) {
	app, _ := setupTestApp(t)
	token := testToken(t, "EMP2", "empc@example.com", models.RoleC)

	resp := doRequest(t, app, "POST", "/api/users/", token, map[string]string{
		"personId": "EMP3",
		"name":     "Someone",
		"email":    "someone@example.com",
		"phone":    "9111111111",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
