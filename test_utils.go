package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"
	"github.com/KeshavGarg1234/inventra/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp builds the real application over an in-memory database
// and returns a store bound to the same database for seeding.
func setupTestApp(t *testing.T) (*fiber.App, *services.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := buildApp(db, nil)
	return app, services.NewStore(db, nil)
}

// testToken mints a JWT for the given identity and role.
func testToken(t *testing.T, personID, email, role string) string {
	t.Helper()

	token, err := utils.GenerateJWT(personID, email, role)
	if err != nil {
		t.Fatalf("Failed to generate test token: %v", err)
	}
	return token
}

// doRequest performs a JSON request against the test app.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	return resp
}

// decodeBody unmarshals a response body into out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	resp.Body.Close()
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", string(data), err)
	}
}

// adminUser is the standing admin fixture.
func adminUser() models.User {
	return models.User{
		PersonID:    "ADMIN1",
		Name:        "Admin One",
		Email:       "admin@example.com",
		Phone:       "1000000000",
		Role:        models.RoleA,
		JoiningDate: "2024-01-01T00:00:00Z",
	}
}

// seedTree persists a tree fixture. The store's Load has already seeded
// the secure defaults, so fixtures only set what they care about.
func seedTree(t *testing.T, store *services.Store, tree *models.InventoryTree) {
	t.Helper()

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load tree for seeding: %v", err)
	}
	if tree.Items != nil {
		loaded.Items = tree.Items
	}
	if tree.Bills != nil {
		loaded.Bills = tree.Bills
	}
	if tree.Users != nil {
		loaded.Users = tree.Users
	}
	if tree.Notifications != nil {
		loaded.Notifications = tree.Notifications
	}
	if err := store.Save(loaded); err != nil {
		t.Fatalf("Failed to seed tree: %v", err)
	}
}

// loadTree reads the current tree state for assertions.
func loadTree(t *testing.T, store *services.Store) *models.InventoryTree {
	t.Helper()

	tree, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load tree: %v", err)
	}
	return tree
}
