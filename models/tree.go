package models

import (
	"github.com/shopspring/decimal"
)

// Availability statuses for a serialized unit.
const (
	StatusAvailable = "Available"
	StatusInUse     = "In Use"
	StatusDiscarded = "Discarded"
)

// Notification types.
const (
	NotificationAllot    = "allot"
	NotificationUnallot  = "unallot"
	NotificationDiscard  = "discard"
	NotificationRestore  = "restore"
	NotificationRegister = "register"
)

// Notification statuses. A notification is created pending and moves
// exactly once to approved or rejected.
const (
	NotificationPending  = "pending"
	NotificationApproved = "approved"
	NotificationRejected = "rejected"
)

// AssignmentDetails is a snapshot of the assignee taken at assignment
// time. It is a copy, not a live reference, and can drift from the User
// record until a user update reconciles it.
type AssignmentDetails struct {
	PersonID       string `json:"personId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department,omitempty"`
	Section        string `json:"section,omitempty"`
	AssignmentDate string `json:"assignmentDate"`
	Project        string `json:"project,omitempty"`
}

// SubItem is a single serialized unit. The ID is a 6-digit zero-padded
// string, unique across the whole inventory, not just per item.
// AssignedTo is set iff the status is "In Use"; DiscardedDate is set iff
// the status is "Discarded".
type SubItem struct {
	ID                 string             `json:"id"`
	AvailabilityStatus string             `json:"availabilityStatus"`
	BillNumber         string             `json:"billNumber,omitempty"`
	LotName            string             `json:"lotName,omitempty"`
	DiscardedDate      string             `json:"discardedDate,omitempty"`
	AssignedTo         *AssignmentDetails `json:"assignedTo,omitempty"`
}

// Item groups serialized units. TotalQuantity always equals
// len(SubItems) after any mutation.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	TotalQuantity int       `json:"totalQuantity"`
	SubItems      []SubItem `json:"subItems"`
}

// Bill is a purchase bill. BillNumber is the unique key; the units bought
// under it carry the same bill number (and typically lot name).
type Bill struct {
	BillNumber string           `json:"billNumber"`
	BillDate   string           `json:"billDate"`
	Company    string           `json:"company"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

// User is a directory record. PersonID is an externally issued identity
// and, like Email, unique case-insensitively; Phone is unique exactly.
type User struct {
	PersonID    string `json:"personId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Department  string `json:"department,omitempty"`
	Section     string `json:"section,omitempty"`
	JoiningDate string `json:"joiningDate"`
}

// NewUserData is the payload of a registration request.
type NewUserData struct {
	PersonID   string `json:"personId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department,omitempty"`
	Section    string `json:"section,omitempty"`
}

// Requester identifies who initiated a request, for audit display.
type Requester struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
}

// RequestedData is the union payload of a notification: assignment
// details for allot/unallot, a new-user payload for register, and the
// requester identity for status changes.
type RequestedData struct {
	AssignmentDetails *AssignmentDetails `json:"assignmentDetails,omitempty"`
	NewUser           *NewUserData       `json:"newUser,omitempty"`
	Requester         *Requester         `json:"requester,omitempty"`
}

// Notification is a pending request in the approval workflow.
type Notification struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	Status          string         `json:"status"`
	CreatedAt       string         `json:"createdAt"`
	ItemID          string         `json:"itemId,omitempty"`
	SubItemID       string         `json:"subItemId,omitempty"`
	ItemName        string         `json:"itemName,omitempty"`
	RequestedData   *RequestedData `json:"requestedData,omitempty"`
	HandledAt       string         `json:"handledAt,omitempty"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// Secure holds the global secure settings. Missing keys are filled with
// fixed defaults on first load.
type Secure struct {
	DeletePasskey string `json:"deletePasskey,omitempty"`
	AuthPasskey   string `json:"authPasskey,omitempty"`
	ContactEmail  string `json:"contactEmail,omitempty"`
}

// InventoryTree is the aggregate root: the whole persisted tree. The
// store is the sole owner of all entities; every mutation is
// read-tree, modify in memory, write-tree.
type InventoryTree struct {
	Items         []Item         `json:"items"`
	Bills         []Bill         `json:"bills"`
	Users         []User         `json:"users"`
	Notifications []Notification `json:"notifications"`
	Secure        Secure         `json:"secure"`
}

// FindItem returns the item with the given ID, or nil.
func (t *InventoryTree) FindItem(itemID string) *Item {
	for i := range t.Items {
		if t.Items[i].ID == itemID {
			return &t.Items[i]
		}
	}
	return nil
}

// FindSubItem returns the sub-item with the given ID inside an item, or nil.
func (it *Item) FindSubItem(subItemID string) *SubItem {
	for i := range it.SubItems {
		if it.SubItems[i].ID == subItemID {
			return &it.SubItems[i]
		}
	}
	return nil
}

// RecountQuantity re-derives TotalQuantity from the sub-item list.
func (it *Item) RecountQuantity() {
	it.TotalQuantity = len(it.SubItems)
}
