package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/leasedesk/internal/auth"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"client", "assistant", "manager", "supervisor", "owner"} {
		r, err := auth.ParseRole(s)
		assert.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := auth.ParseRole("Client")
	assert.Error(t, err)
}

func TestRole_IsStaff(t *testing.T) {
	assert.False(t, auth.RoleClient.IsStaff())
	assert.True(t, auth.RoleAssistant.IsStaff())
	assert.True(t, auth.RoleManager.IsStaff())
	assert.True(t, auth.RoleSupervisor.IsStaff())
	assert.True(t, auth.RoleOwner.IsStaff())
	assert.False(t, auth.Role("tenant").IsStaff())
}
