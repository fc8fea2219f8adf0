package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eduforum/internal/client/authz"
	"eduforum/internal/client/session"
)

func snap(loading, authed bool, role string) session.Snapshot {
	s := session.Snapshot{Loading: loading, Authenticated: authed}
	if authed {
		s.User = &session.UserSnapshot{ID: "u1", Username: "alice", Role: role}
	}
	return s
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		snap     session.Snapshot
		required authz.Role
		want     DecisionKind
	}{
		{"loading makes no redirect decision", snap(true, false, ""), authz.RoleAdmin, DecisionLoading},
		{"unauthenticated goes to login", snap(false, false, ""), "", DecisionRedirectLogin},
		{"unauthenticated goes to login even with role", snap(false, false, ""), authz.RoleAdmin, DecisionRedirectLogin},
		{"authenticated no role required renders", snap(false, true, "student"), "", DecisionRender},
		{"student blocked from admin route", snap(false, true, "student"), authz.RoleAdmin, DecisionRedirectUnauthorized},
		{"teacher blocked from admin route", snap(false, true, "teacher"), authz.RoleAdmin, DecisionRedirectUnauthorized},
		{"teacher passes teacher route", snap(false, true, "teacher"), authz.RoleTeacher, DecisionRender},
		{"admin passes everything", snap(false, true, "ADMIN"), authz.RoleAdmin, DecisionRender},
		{"unknown role treated as student", snap(false, true, "wizard"), authz.RoleTeacher, DecisionRedirectUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := RequireRole(tc.snap, tc.required, "/admin/users")
			assert.Equal(t, tc.want, d.Kind)
		})
	}
}

func TestRequireRole_LoginRedirectPreservesPath(t *testing.T) {
	d := RequireRole(snap(false, false, ""), "", "/topics/42")
	assert.Equal(t, DecisionRedirectLogin, d.Kind)
	assert.Equal(t, LoginPath, d.RedirectTo)
	assert.Equal(t, "/topics/42", d.From)
}

func TestRequire_IsRolelessRequireRole(t *testing.T) {
	d := Require(snap(false, true, "student"), "/profile")
	assert.Equal(t, DecisionRender, d.Kind)
}
