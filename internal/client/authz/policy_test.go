package authz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eduforum/internal/client/session"
)

var (
	owner   = &session.UserSnapshot{ID: "u1", Username: "alice", Role: "student"}
	other   = &session.UserSnapshot{ID: "u2", Username: "bob", Role: "student"}
	teacher = &session.UserSnapshot{ID: "u3", Username: "carol", Role: "teacher"}
	admin   = &session.UserSnapshot{ID: "u4", Username: "dave", Role: "Admin"}
)

func itemBy(authorID string, createdAt time.Time) ContentItem {
	return ContentItem{
		ID:        "p1",
		Author:    &Author{ID: authorID, Username: "alice"},
		CreatedAt: createdAt,
	}
}

func TestCanEdit_OwnershipIsTheOnlyPath(t *testing.T) {
	p := NewPolicy()
	item := itemBy("u1", time.Now())

	assert.True(t, p.CanEdit(owner, item))
	assert.False(t, p.CanEdit(other, item))
	assert.False(t, p.CanEdit(teacher, item), "teacher role grants no edit rights")
	assert.False(t, p.CanEdit(admin, item), "admin role grants no edit rights")
	assert.False(t, p.CanEdit(nil, item))
	assert.False(t, p.CanEdit(owner, ContentItem{ID: "p2"}), "item without author is not editable")
}

func TestCanDelete_RoleEscalation(t *testing.T) {
	p := NewPolicy()
	item := itemBy("u1", time.Now())

	assert.True(t, p.CanDelete(owner, item), "owner may delete")
	assert.False(t, p.CanDelete(other, item), "non-owner student may not")
	assert.True(t, p.CanDelete(teacher, item), "teacher may delete any content")
	assert.True(t, p.CanDelete(admin, item), "admin may delete any content")
	assert.False(t, p.CanDelete(nil, item))
}

func TestIsWithinEditWindow_InclusiveBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewPolicyWithClock(func() time.Time { return now })

	tests := []struct {
		name    string
		age     time.Duration
		minutes int
		want    bool
	}{
		{"fresh", time.Minute, 15, true},
		{"exactly at boundary", 15 * time.Minute, 15, true},
		{"one second past", 15*time.Minute + time.Second, 15, false},
		{"old", time.Hour, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := itemBy("u1", now.Add(-tc.age))
			assert.Equal(t, tc.want, p.IsWithinEditWindow(item, tc.minutes))
		})
	}
}

func TestCanEditWithinWindow(t *testing.T) {
	now := time.Now()
	p := NewPolicyWithClock(func() time.Time { return now })

	fresh := itemBy("u1", now.Add(-time.Minute))
	stale := itemBy("u1", now.Add(-time.Hour))

	assert.True(t, p.CanEditWithinWindow(owner, fresh, 15))
	assert.False(t, p.CanEditWithinWindow(owner, stale, 15))
	assert.False(t, p.CanEditWithinWindow(other, fresh, 15))
}

func TestEditRestrictionMessage_Precedence(t *testing.T) {
	now := time.Now()
	p := NewPolicyWithClock(func() time.Time { return now })

	fresh := itemBy("u1", now.Add(-time.Minute))
	stale := itemBy("u1", now.Add(-time.Hour))

	// Unauthenticated wins even when the actor is also not the owner.
	assert.Equal(t, "You must be logged in to edit content", p.EditRestrictionMessage(nil, stale, 15))

	assert.Equal(t, "You can only edit your own content", p.EditRestrictionMessage(other, fresh, 15))

	assert.Equal(t, "Content can only be edited within 15 minutes of creation", p.EditRestrictionMessage(owner, stale, 15))

	assert.Empty(t, p.EditRestrictionMessage(owner, fresh, 15))
}
