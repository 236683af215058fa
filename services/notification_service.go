package services

import (
	"fmt"
	"time"

	"github.com/KeshavGarg1234/inventra/models"
)

// NotificationService implements the approval workflow: pending requests
// are created against a snapshot of the tree and re-validated against
// current truth when an admin finally acts on them.
type NotificationService struct {
	Store *Store
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(store *Store) *NotificationService {
	return &NotificationService{Store: store}
}

// Handling actions.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// createNotification builds a pending notification for a unit request,
// prepends it and persists the notification list.
func (ns *NotificationService) createNotification(tree *models.InventoryTree, notifType string, item *models.Item, subItemID string, requested *models.RequestedData) (Result, error) {
	notification := models.Notification{
		ID:            fmt.Sprintf("notif-%d", time.Now().UnixNano()),
		Type:          notifType,
		Status:        models.NotificationPending,
		CreatedAt:     nowISO(),
		ItemID:        item.ID,
		SubItemID:     subItemID,
		ItemName:      item.Name,
		RequestedData: requested,
	}
	tree.Notifications = append([]models.Notification{notification}, tree.Notifications...)

	if err := ns.Store.Save(tree, PathNotifications); err != nil {
		return Result{}, err
	}
	return ok(fmt.Sprintf("Request to %s unit has been submitted for approval.", notifType)), nil
}

// RequestAllotment files a pending allot request for a unit. The item is
// validated now and re-validated at approval time, since the tree may
// have changed in between.
func (ns *NotificationService) RequestAllotment(itemID, subItemID string, details models.AssignmentDetails) (Result, error) {
	tree, err := ns.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	return ns.createNotification(tree, models.NotificationAllot, item, subItemID, &models.RequestedData{
		AssignmentDetails: &details,
	})
}

// RequestStatusChange files a pending unallot, discard or restore
// request. For unallot the current assignment is snapshotted into the
// request so approval cannot be fooled by a since-changed assignment;
// the requester identity is kept for audit display.
func (ns *NotificationService) RequestStatusChange(itemID, subItemID, notifType string, requester *models.Requester) (Result, error) {
	switch notifType {
	case models.NotificationUnallot, models.NotificationDiscard, models.NotificationRestore:
	default:
		return fail("Unknown request type %q.", notifType), nil
	}

	tree, err := ns.Store.Load()
	if err != nil {
		return Result{}, err
	}

	item := tree.FindItem(itemID)
	if item == nil {
		return fail("Item not found."), nil
	}

	requested := &models.RequestedData{Requester: requester}
	if notifType == models.NotificationUnallot {
		if sub := item.FindSubItem(subItemID); sub != nil && sub.AssignedTo != nil {
			snapshot := *sub.AssignedTo
			requested.AssignmentDetails = &snapshot
		}
	}

	return ns.createNotification(tree, notifType, item, subItemID, requested)
}

// RequestRegistration files a pending register request. The identity is
// checked both against committed users and against still-pending
// registration requests.
func (ns *NotificationService) RequestRegistration(data models.NewUserData) (Result, error) {
	tree, err := ns.Store.Load()
	if err != nil {
		return Result{}, err
	}

	if msg := userConflict(tree.Users, data.PersonID, data.Email, data.Phone, ""); msg != "" {
		return fail("%s", msg), nil
	}
	if msg := pendingRegistrationConflict(tree.Notifications, data); msg != "" {
		return fail("%s", msg), nil
	}

	payload := data
	notification := models.Notification{
		ID:            fmt.Sprintf("notif-reg-%d", time.Now().UnixNano()),
		Type:          models.NotificationRegister,
		Status:        models.NotificationPending,
		CreatedAt:     nowISO(),
		RequestedData: &models.RequestedData{NewUser: &payload},
	}
	tree.Notifications = append([]models.Notification{notification}, tree.Notifications...)

	if err := ns.Store.Save(tree, PathNotifications); err != nil {
		return Result{}, err
	}
	return ok("Registration request submitted successfully. Please wait for an admin to approve your account."), nil
}

// HandleAction is the central transition function. A pending
// notification moves exactly once to approved or rejected; a
// notification found already handled is removed without re-applying
// effects. Approvals re-resolve the target against the current tree and
// self-heal into a rejection with a reason when the target vanished or
// its state moved out from under the request.
func (ns *NotificationService) HandleAction(notificationID, action string) (Result, error) {
	if action != ActionApprove && action != ActionReject {
		return fail("Unknown action %q.", action), nil
	}

	tree, err := ns.Store.Load()
	if err != nil {
		return Result{}, err
	}

	index := -1
	for i := range tree.Notifications {
		if tree.Notifications[i].ID == notificationID {
			index = i
			break
		}
	}
	if index == -1 {
		return fail("Notification not found."), nil
	}

	notification := &tree.Notifications[index]
	if notification.Status != models.NotificationPending {
		// Idempotency guard: a second approve/reject after the request
		// already resolved just cleans it up.
		tree.Notifications = append(tree.Notifications[:index], tree.Notifications[index+1:]...)
		if err := ns.Store.Save(tree, PathNotifications); err != nil {
			return Result{}, err
		}
		return fail("This request has already been handled."), nil
	}

	if action == ActionApprove {
		notification.Status = models.NotificationApproved
	} else {
		notification.Status = models.NotificationRejected
	}
	notification.HandledAt = nowISO()

	if action == ActionApprove {
		if notification.Type == models.NotificationRegister {
			ns.approveRegistration(tree, notification)
		} else {
			ns.approveUnitRequest(tree, notification)
		}
	}

	if err := ns.Store.Save(tree, PathItems, PathUsers, PathNotifications); err != nil {
		return Result{}, err
	}

	final := "approved"
	if action == ActionReject {
		final = "rejected"
	}
	return ok(fmt.Sprintf("Request has been %s.", final)), nil
}

// approveRegistration commits the requested user. The very first user in
// the system is created one level above the default.
func (ns *NotificationService) approveRegistration(tree *models.InventoryTree, notification *models.Notification) {
	if notification.RequestedData == nil || notification.RequestedData.NewUser == nil {
		notification.Status = models.NotificationRejected
		notification.RejectionReason = "User data is missing from the request."
		return
	}
	data := notification.RequestedData.NewUser

	role := models.RoleD
	if len(tree.Users) == 0 {
		role = models.RoleC
	}
	tree.Users = append([]models.User{{
		PersonID:    data.PersonID,
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Department:  data.Department,
		Section:     data.Section,
		JoiningDate: nowISO(),
		Role:        role,
	}}, tree.Users...)
}

// approveUnitRequest re-resolves the target unit and dispatches on the
// request type per the unit state machine:
//
//	Available --allot--> In Use --unallot--> Available
//	Available --discard--> Discarded --restore--> Available
//
// Any mismatch flips the notification to rejected with a reason citing
// the unit's actual current status.
func (ns *NotificationService) approveUnitRequest(tree *models.InventoryTree, notification *models.Notification) {
	item := tree.FindItem(notification.ItemID)
	if item == nil {
		notification.Status = models.NotificationRejected
		notification.RejectionReason = fmt.Sprintf("Item with ID %s no longer exists.", notification.ItemID)
		return
	}

	sub := item.FindSubItem(notification.SubItemID)
	if sub == nil {
		notification.Status = models.NotificationRejected
		notification.RejectionReason = fmt.Sprintf("Sub-item with ID %s no longer exists.", notification.SubItemID)
		return
	}

	switch notification.Type {
	case models.NotificationAllot:
		if sub.AvailabilityStatus != models.StatusAvailable {
			notification.RejectionReason = fmt.Sprintf("Unit is no longer available. Current status: %s.", sub.AvailabilityStatus)
		} else if notification.RequestedData == nil || notification.RequestedData.AssignmentDetails == nil {
			notification.RejectionReason = "Assignment details are missing from the request."
		} else {
			details := *notification.RequestedData.AssignmentDetails
			sub.AvailabilityStatus = models.StatusInUse
			sub.AssignedTo = &details
			ensureAssigneeExists(tree, details)
		}
	case models.NotificationUnallot:
		if sub.AvailabilityStatus != models.StatusInUse {
			notification.RejectionReason = fmt.Sprintf("Unit is not 'In Use'. Current status: %s.", sub.AvailabilityStatus)
		} else {
			sub.AvailabilityStatus = models.StatusAvailable
			sub.AssignedTo = nil
		}
	case models.NotificationDiscard:
		if sub.AvailabilityStatus != models.StatusAvailable {
			notification.RejectionReason = fmt.Sprintf("Unit must be 'Available' to be discarded. Current status: %s.", sub.AvailabilityStatus)
		} else {
			sub.AvailabilityStatus = models.StatusDiscarded
			sub.DiscardedDate = nowISO()
			sub.AssignedTo = nil
		}
	case models.NotificationRestore:
		if sub.AvailabilityStatus != models.StatusDiscarded {
			notification.RejectionReason = fmt.Sprintf("Unit is not 'Discarded'. Current status: %s.", sub.AvailabilityStatus)
		} else {
			sub.AvailabilityStatus = models.StatusAvailable
			sub.DiscardedDate = ""
		}
	}

	if notification.RejectionReason != "" {
		notification.Status = models.NotificationRejected
	}
}

// ensureAssigneeExists auto-creates a directory record for an assignee
// the system has never seen, at the lowest access level.
func ensureAssigneeExists(tree *models.InventoryTree, details models.AssignmentDetails) {
	for _, user := range tree.Users {
		if user.PersonID == details.PersonID {
			return
		}
	}
	tree.Users = append([]models.User{{
		PersonID:    details.PersonID,
		Name:        details.Name,
		Email:       details.Email,
		Phone:       details.Phone,
		Department:  details.Department,
		Section:     details.Section,
		JoiningDate: nowISO(),
		Role:        models.RoleD,
	}}, tree.Users...)
}
