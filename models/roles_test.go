package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	// Everyone can view and request.
	for _, role := range []string{RoleA, RoleB, RoleC, RoleD} {
		assert.True(t, RoleAllowed(role, ActionViewInventory), "role %s should view", role)
		assert.True(t, RoleAllowed(role, ActionRequestChanges), "role %s should request", role)
	}

	// C manages inventory but nothing administrative.
	assert.True(t, RoleAllowed(RoleC, ActionManageInventory))
	assert.False(t, RoleAllowed(RoleC, ActionHandleNotifications))
	assert.False(t, RoleAllowed(RoleC, ActionManageUsers))
	assert.False(t, RoleAllowed(RoleC, ActionManageSettings))
	assert.False(t, RoleAllowed(RoleC, ActionDeleteRecords))

	// D can only view and request.
	assert.False(t, RoleAllowed(RoleD, ActionManageInventory))
	assert.False(t, RoleAllowed(RoleD, ActionDeleteRecords))

	// A and B hold the administrative actions.
	for _, role := range []string{RoleA, RoleB} {
		assert.True(t, RoleAllowed(role, ActionHandleNotifications), "role %s", role)
		assert.True(t, RoleAllowed(role, ActionManageUsers), "role %s", role)
		assert.True(t, RoleAllowed(role, ActionManageSettings), "role %s", role)
		assert.True(t, RoleAllowed(role, ActionDeleteRecords), "role %s", role)
	}
}

func TestRoleAllowedUnknown(t *testing.T) {
	assert.False(t, RoleAllowed("E", ActionViewInventory))
	assert.False(t, RoleAllowed(RoleA, "unknown-action"))
}
