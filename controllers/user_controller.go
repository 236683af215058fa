package controllers

import (
	"github.com/KeshavGarg1234/inventra/models"
	"github.com/KeshavGarg1234/inventra/services"

	"github.com/gofiber/fiber/v2"
)

// UserController handles the user directory.
type UserController struct {
	Store *services.Store
	Users *services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(store *services.Store, users *services.UserService) *UserController {
	return &UserController{Store: store, Users: users}
}

// UsersResponse is the list response.
type UsersResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Users   []models.User `json:"users"`
}

// AssignedUnit is one unit currently held by a user.
type AssignedUnit struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	UnitID   string `json:"unitId"`
}

// UserDetailResponse is the single-user response with the units they
// hold.
type UserDetailResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message,omitempty"`
	User          *models.User   `json:"user,omitempty"`
	AssignedUnits []AssignedUnit `json:"assignedUnits,omitempty"`
}

// List returns the whole directory.
func (uc *UserController) List(c *fiber.Ctx) error {
	tree, err := uc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}
	return c.JSON(UsersResponse{Success: true, Users: tree.Users})
}

// Get returns one user and the units currently assigned to them.
func (uc *UserController) Get(c *fiber.Ctx) error {
	personID := c.Params("personId")

	tree, err := uc.Store.Load()
	if err != nil {
		return respond(c, services.Result{}, err)
	}

	var user *models.User
	for i := range tree.Users {
		if tree.Users[i].PersonID == personID {
			user = &tree.Users[i]
			break
		}
	}
	if user == nil {
		return c.Status(404).JSON(UserDetailResponse{
			Success: false,
			Message: "User not found.",
		})
	}

	var assigned []AssignedUnit
	for _, item := range tree.Items {
		for _, sub := range item.SubItems {
			if sub.AssignedTo != nil && sub.AssignedTo.PersonID == personID {
				assigned = append(assigned, AssignedUnit{
					ItemID:   item.ID,
					ItemName: item.Name,
					UnitID:   sub.ID,
				})
			}
		}
	}

	return c.JSON(UserDetailResponse{Success: true, User: user, AssignedUnits: assigned})
}

// Create adds a user directly, without the approval workflow.
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req models.NewUserData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.PersonID == "" || req.Name == "" || !emailPattern.MatchString(req.Email) || req.Phone == "" {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Person ID, name, email and phone are required",
		})
	}

	result, err := uc.Users.AddUser(req)
	if err == nil && result.Success {
		return c.Status(201).JSON(result)
	}
	return respond(c, result, err)
}

// Update edits a user; identity edits propagate into assignment
// snapshots.
func (uc *UserController) Update(c *fiber.Ctx) error {
	var req models.User
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(services.Result{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.PersonID == "" {
		req.PersonID = c.Params("personId")
	}

	result, err := uc.Users.UpdateUser(c.Params("personId"), req)
	return respond(c, result, err)
}

// Delete removes a user after freeing their units. Passkey confirmed.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	if proceed, resp := requireDeletePasskey(c, uc.Store); !proceed {
		return resp
	}

	result, err := uc.Users.DeleteUser(c.Params("personId"))
	return respond(c, result, err)
}
