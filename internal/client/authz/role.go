package authz

import "strings"

// Role is one of the three forum privilege levels, totally ordered
// student < teacher < admin.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// NormalizeRole maps a raw role string to a Role. Matching is
// case-insensitive; anything that is not admin or teacher — including the
// empty string and unrecognized values — is a student. Total by design of
// the role model: it never fails.
func NormalizeRole(raw string) Role {
	switch {
	case strings.EqualFold(raw, string(RoleAdmin)):
		return RoleAdmin
	case strings.EqualFold(raw, string(RoleTeacher)):
		return RoleTeacher
	default:
		return RoleStudent
	}
}

// HasAtLeastSamePrivileges reports whether actual covers required.
// Implemented as explicit rules rather than a rank comparison so the edge
// semantics stay fixed: nothing outranks admin, nothing ranks below student.
func HasAtLeastSamePrivileges(actual, required Role) bool {
	switch actual {
	case RoleAdmin:
		return true
	case RoleTeacher:
		return required != RoleAdmin
	default:
		return required == RoleStudent
	}
}
