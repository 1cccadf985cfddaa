package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"nil user", nil, false},
		{"regular user", &User{Email: "learner@example.com", Role: RoleUser}, false},
		{"teacher", &User{Email: "teacher@example.com", Role: RoleTeacher}, false},
		{"admin role", &User{Email: "ops@example.com", Role: RoleAdmin}, true},
		{"admin email with user role", &User{Email: testAdminEmail, Role: RoleUser}, true},
		{"admin email with empty role", &User{Email: testAdminEmail}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeIsAdmin(tt.user, testAdminEmail))
		})
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleLead.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("SUPERUSER").Valid())
	assert.False(t, Role("").Valid())
}
