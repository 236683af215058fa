package models

// User roles, highest to lowest. A is the root admin; D is the default
// level for newly approved users.
const (
	RoleA = "A"
	RoleB = "B"
	RoleC = "C"
	RoleD = "D"
)

// Actions gated by role.
const (
	ActionViewInventory       = "view-inventory"
	ActionRequestChanges      = "request-changes"
	ActionManageInventory     = "manage-inventory"
	ActionHandleNotifications = "handle-notifications"
	ActionManageUsers         = "manage-users"
	ActionManageSettings      = "manage-settings"
	ActionDeleteRecords       = "delete-records"
)

// rolePermissions is the capability table. Kept as an explicit lookup so
// role checks never degrade into scattered string comparisons.
var rolePermissions = map[string]map[string]bool{
	ActionViewInventory:       {RoleA: true, RoleB: true, RoleC: true, RoleD: true},
	ActionRequestChanges:      {RoleA: true, RoleB: true, RoleC: true, RoleD: true},
	ActionManageInventory:     {RoleA: true, RoleB: true, RoleC: true},
	ActionHandleNotifications: {RoleA: true, RoleB: true},
	ActionManageUsers:         {RoleA: true, RoleB: true},
	ActionManageSettings:      {RoleA: true, RoleB: true},
	ActionDeleteRecords:       {RoleA: true, RoleB: true},
}

// RoleAllowed reports whether the given role may perform the action.
func RoleAllowed(role, action string) bool {
	allowed, ok := rolePermissions[action]
	if !ok {
		return false
	}
	return allowed[role]
}
