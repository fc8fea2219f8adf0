package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"Admin", RoleAdmin},
		{"teacher", RoleTeacher},
		{"TEACHER", RoleTeacher},
		{"Teacher", RoleTeacher},
		{"student", RoleStudent},
		{"", RoleStudent},
		{"unknown", RoleStudent},
		{"administrator", RoleStudent},
		{"admin ", RoleStudent},
	}

	for _, tc := range tests {
		t.Run("raw="+tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRole(tc.raw))
		})
	}
}

func TestHasAtLeastSamePrivileges_AllPairs(t *testing.T) {
	tests := []struct {
		actual   Role
		required Role
		want     bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleTeacher, true},
		{RoleAdmin, RoleStudent, true},
		{RoleTeacher, RoleAdmin, false},
		{RoleTeacher, RoleTeacher, true},
		{RoleTeacher, RoleStudent, true},
		{RoleStudent, RoleAdmin, false},
		{RoleStudent, RoleTeacher, false},
		{RoleStudent, RoleStudent, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.actual)+"_vs_"+string(tc.required), func(t *testing.T) {
			assert.Equal(t, tc.want, HasAtLeastSamePrivileges(tc.actual, tc.required))
		})
	}
}
