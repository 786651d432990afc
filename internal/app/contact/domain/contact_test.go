package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

func ptr[T any](v T) *T { return &v }

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func submission() Submission {
	return Submission{
		Name:    " Asha ",
		Email:   "Asha@Example.com",
		Subject: "Site visit",
		Message: "Can I visit the Baner villa on Saturday?",
	}
}

func TestNewContact(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewContact("c1", submission(), now)
		require.NoError(t, err)
		assert.Equal(t, "Asha", c.Name())
		assert.Equal(t, "asha@example.com", c.Email())
		assert.Equal(t, CategoryGeneral, c.Category())
		assert.Equal(t, StatusNew, c.Status())
		assert.Equal(t, PriorityMedium, c.Priority())
		assert.False(t, c.Read())
		require.Len(t, c.DomainEvents(), 1)
		assert.Equal(t, "contact.submitted", c.DomainEvents()[0].EventType())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewContact("c1", Submission{Email: "not-an-email", Category: "spam"}, now)
		v, ok := apperr.AsValidation(err)
		require.True(t, ok)
		for _, field := range []string{"name", "email", "subject", "message", "category"} {
			assert.Contains(t, v.Fields, field)
		}
	})
}

func TestContact_ApplyTriage(t *testing.T) {
	t.Run("status change records an event", func(t *testing.T) {
		c := ReconstructContact(ContactSnapshot{ID: "c1", Status: StatusNew, Priority: PriorityMedium})
		err := c.ApplyTriage(Triage{Status: ptr(StatusInProgress), Priority: ptr(PriorityHigh), AssignedTo: ptr("admin-1")}, "admin-1", now)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, c.Status())
		assert.Equal(t, PriorityHigh, c.Priority())
		assert.Equal(t, "admin-1", c.AssignedTo())
		assert.True(t, c.Changes().Dirty(FieldStatus))
		assert.True(t, c.Changes().Dirty(FieldAssignedTo))
		require.Len(t, c.DomainEvents(), 1)
		assert.Equal(t, "contact.status_changed", c.DomainEvents()[0].EventType())
	})

	t.Run("same values change nothing", func(t *testing.T) {
		c := ReconstructContact(ContactSnapshot{ID: "c1", Status: StatusNew, Priority: PriorityMedium})
		require.NoError(t, c.ApplyTriage(Triage{Status: ptr(StatusNew), Priority: ptr(PriorityMedium)}, "admin-1", now))
		assert.False(t, c.Changes().HasChanges())
		assert.Empty(t, c.DomainEvents())
	})

	t.Run("empty assignee clears", func(t *testing.T) {
		c := ReconstructContact(ContactSnapshot{ID: "c1", Status: StatusNew, AssignedTo: "admin-1"})
		require.NoError(t, c.ApplyTriage(Triage{AssignedTo: ptr("")}, "admin-1", now))
		assert.Empty(t, c.AssignedTo())
	})

	t.Run("unknown values", func(t *testing.T) {
		c := ReconstructContact(ContactSnapshot{ID: "c1", Status: StatusNew})
		err := c.ApplyTriage(Triage{Status: ptr(Status("open")), Priority: ptr(Priority("p0"))}, "admin-1", now)
		v, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Contains(t, v.Fields, "status")
		assert.Contains(t, v.Fields, "priority")
		assert.Equal(t, StatusNew, c.Status())
	})
}

func TestContact_NotesAndRead(t *testing.T) {
	c := ReconstructContact(ContactSnapshot{ID: "c1"})

	assert.True(t, c.MarkRead(now))
	assert.False(t, c.MarkRead(now))

	_, err := c.AddNote("n1", "admin-1", "  ", now)
	assert.Error(t, err)

	first, err := c.AddNote("n1", "admin-1", "Called back", now)
	require.NoError(t, err)
	_, err = c.AddNote("n2", "admin-1", "Visit booked", now.Add(time.Hour))
	require.NoError(t, err)

	notes := c.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, first, notes[0])
	assert.Equal(t, "Visit booked", notes[1].Note)
}
