package services

import (
	"strings"

	"github.com/KeshavGarg1234/inventra/models"
)

// UserService implements the user directory operations.
type UserService struct {
	Store *Store
}

// NewUserService creates a new UserService.
func NewUserService(store *Store) *UserService {
	return &UserService{Store: store}
}

// userConflict checks the new identity against the existing directory.
// Person ID and email compare case-insensitively, phone exactly. The
// record with excludePersonID (the one being edited) is skipped. Returns
// a failure message, or "" when the identity is free.
func userConflict(users []models.User, personID, email, phone, excludePersonID string) string {
	for _, user := range users {
		if user.PersonID == excludePersonID {
			continue
		}
		if strings.EqualFold(user.PersonID, personID) {
			return "A user with ID \"" + personID + "\" already exists."
		}
		if strings.EqualFold(user.Email, email) {
			return "A user with email \"" + email + "\" already exists."
		}
		if user.Phone == phone {
			return "A user with phone number \"" + phone + "\" already exists."
		}
	}
	return ""
}

// pendingRegistrationConflict checks the new identity against
// still-pending registration requests, so a second request cannot
// collide with a first one that has not been approved yet.
func pendingRegistrationConflict(notifications []models.Notification, data models.NewUserData) string {
	for _, n := range notifications {
		if n.Type != models.NotificationRegister || n.Status != models.NotificationPending {
			continue
		}
		if n.RequestedData == nil || n.RequestedData.NewUser == nil {
			continue
		}
		pending := n.RequestedData.NewUser
		if strings.EqualFold(pending.PersonID, data.PersonID) {
			return "A registration request for user ID \"" + data.PersonID + "\" already exists."
		}
		if strings.EqualFold(pending.Email, data.Email) {
			return "A registration request for email \"" + data.Email + "\" already exists."
		}
		if pending.Phone == data.Phone {
			return "A registration request for phone number \"" + data.Phone + "\" already exists."
		}
	}
	return ""
}

// AddUser creates a directory record directly, skipping the approval
// workflow. The new user gets the lowest access level.
func (us *UserService) AddUser(data models.NewUserData) (Result, error) {
	tree, err := us.Store.Load()
	if err != nil {
		return Result{}, err
	}

	if msg := userConflict(tree.Users, data.PersonID, data.Email, data.Phone, ""); msg != "" {
		return fail("%s", msg), nil
	}

	user := models.User{
		PersonID:    data.PersonID,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Department:  data.Department,
		Section:     data.Section,
		JoiningDate: nowISO(),
		Role:        models.RoleD,
	}
	tree.Users = append([]models.User{user}, tree.Users...)

	if err := us.Store.Save(tree, PathUsers); err != nil {
		return Result{}, err
	}
	return ok("User " + data.Name + " added successfully."), nil
}

// UpdateUser edits a directory record. Identity changes are
// collision-checked against everyone else, and both a person-ID rename
// and detail edits are pushed into the assignment snapshots on units, so
// the copies stop drifting from the record.
func (us *UserService) UpdateUser(originalPersonID string, updated models.User) (Result, error) {
	tree, err := us.Store.Load()
	if err != nil {
		return Result{}, err
	}

	index := -1
	for i := range tree.Users {
		if tree.Users[i].PersonID == originalPersonID {
			index = i
			break
		}
	}
	if index == -1 {
		return fail("User not found."), nil
	}

	if msg := userConflict(tree.Users, updated.PersonID, updated.Email, updated.Phone, originalPersonID); msg != "" {
		return fail("%s", msg), nil
	}

	if updated.Role == "" {
		updated.Role = tree.Users[index].Role
	}
	if updated.JoiningDate == "" {
		updated.JoiningDate = tree.Users[index].JoiningDate
	}
	tree.Users[index] = updated

	for i := range tree.Items {
		for j := range tree.Items[i].SubItems {
			assigned := tree.Items[i].SubItems[j].AssignedTo
			if assigned == nil {
				continue
			}
			if assigned.PersonID == originalPersonID {
				assigned.PersonID = updated.PersonID
			}
			if assigned.PersonID == updated.PersonID {
				assigned.Name = updated.Name
				assigned.Email = updated.Email
				assigned.Phone = updated.Phone
				assigned.Department = updated.Department
				assigned.Section = updated.Section
			}
		}
	}

	if err := us.Store.Save(tree, PathUsers, PathItems); err != nil {
		return Result{}, err
	}
	return ok("User updated."), nil
}

// DeleteUser removes a directory record. Every unit assigned to the user
// is freed first: status back to Available, snapshot cleared.
func (us *UserService) DeleteUser(personID string) (Result, error) {
	tree, err := us.Store.Load()
	if err != nil {
		return Result{}, err
	}

	kept := tree.Users[:0]
	found := false
	for _, user := range tree.Users {
		if user.PersonID == personID {
			found = true
			continue
		}
		kept = append(kept, user)
	}
	if !found {
		return fail("User not found."), nil
	}
	tree.Users = kept

	for i := range tree.Items {
		for j := range tree.Items[i].SubItems {
			sub := &tree.Items[i].SubItems[j]
			if sub.AssignedTo != nil && sub.AssignedTo.PersonID == personID {
				sub.AvailabilityStatus = models.StatusAvailable
				sub.AssignedTo = nil
			}
		}
	}

	if err := us.Store.Save(tree, PathUsers, PathItems); err != nil {
		return Result{}, err
	}
	return ok("User deleted."), nil
}
