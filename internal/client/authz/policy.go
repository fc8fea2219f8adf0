package authz

import (
	"fmt"
	"time"

	"eduforum/internal/client/session"
)

// Author identifies the owner of a piece of forum content.
type Author struct {
	ID       string
	Username string
	Role     string
}

// ContentItem is the view of a topic or post the policy needs: identity,
// ownership and age. The policy never mutates it.
type ContentItem struct {
	ID        string
	Author    *Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Policy evaluates edit/delete eligibility for forum content. The clock is
// injectable for edit-window tests.
type Policy struct {
	now func() time.Time
}

func NewPolicy() *Policy {
	return &Policy{now: time.Now}
}

// NewPolicyWithClock builds a Policy with a fixed time source.
func NewPolicyWithClock(now func() time.Time) *Policy {
	return &Policy{now: now}
}

// CanEdit reports whether actor may edit item. Ownership is the only path:
// no role, admin included, grants edit rights over another user's content.
func (p *Policy) CanEdit(actor *session.UserSnapshot, item ContentItem) bool {
	if actor == nil || item.Author == nil {
		return false
	}
	return actor.ID == item.Author.ID
}

// CanDelete reports whether actor may delete item: the owner may, and so
// may any teacher or admin regardless of ownership.
func (p *Policy) CanDelete(actor *session.UserSnapshot, item ContentItem) bool {
	if p.CanEdit(actor, item) {
		return true
	}
	if actor == nil {
		return false
	}
	role := NormalizeRole(actor.Role)
	return role == RoleAdmin || role == RoleTeacher
}

// IsWithinEditWindow reports whether item is still young enough to edit.
// The boundary is inclusive: exactly windowMinutes after creation passes.
func (p *Policy) IsWithinEditWindow(item ContentItem, windowMinutes int) bool {
	return p.now().Sub(item.CreatedAt) <= time.Duration(windowMinutes)*time.Minute
}

// CanEditWithinWindow combines ownership and the edit window.
func (p *Policy) CanEditWithinWindow(actor *session.UserSnapshot, item ContentItem, windowMinutes int) bool {
	return p.CanEdit(actor, item) && p.IsWithinEditWindow(item, windowMinutes)
}

// EditRestrictionMessage returns the single user-facing reason an edit is
// not allowed, or "" when it is. Precedence is strict — not logged in,
// then not the owner, then window expired — and reasons are never combined.
func (p *Policy) EditRestrictionMessage(actor *session.UserSnapshot, item ContentItem, windowMinutes int) string {
	if actor == nil {
		return "You must be logged in to edit content"
	}
	if !p.CanEdit(actor, item) {
		return "You can only edit your own content"
	}
	if !p.IsWithinEditWindow(item, windowMinutes) {
		return fmt.Sprintf("Content can only be edited within %d minutes of creation", windowMinutes)
	}
	return ""
}
