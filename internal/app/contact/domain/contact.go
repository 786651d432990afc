package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

// Field names for change tracking
const (
	FieldStatus     = "status"
	FieldPriority   = "priority"
	FieldAssignedTo = "assigned_to"
	FieldRead       = "is_read"
)

const (
	maxNameLen    = 100
	maxSubjectLen = 200
	maxMessageLen = 5000
	maxNoteLen    = 2000
)

// Submission is a contact form as sent by a visitor.
type Submission struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	Category Category
}

// Note is an internal response note written during triage.
type Note struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// Triage is a partial update applied by an admin. AssignedTo set to an
// empty string clears the assignee.
type Triage struct {
	Status     *Status
	Priority   *Priority
	AssignedTo *string
}

// Contact is the contact submission aggregate.
type Contact struct {
	id         string
	name       string
	email      string
	phone      string
	subject    string
	message    string
	category   Category
	status     Status
	priority   Priority
	assignedTo string
	notes      []Note
	read       bool
	createdAt  time.Time
	updatedAt  time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewContact validates a submission and creates an unread contact in
// status new with medium priority.
func NewContact(id string, s Submission, now time.Time) (*Contact, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	if s.Category == "" {
		s.Category = CategoryGeneral
	}

	v := apperr.NewValidation()
	if v.Required("name", s.Name) {
		v.MaxLen("name", s.Name, maxNameLen)
	}
	if v.Required("email", s.Email) {
		v.Email("email", s.Email)
	}
	if v.Required("subject", s.Subject) {
		v.MaxLen("subject", s.Subject, maxSubjectLen)
	}
	if v.Required("message", s.Message) {
		v.MaxLen("message", s.Message, maxMessageLen)
	}
	v.Check(s.Category.Valid(), "category", "is not a known category")
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	c := &Contact{
		id:        id,
		name:      s.Name,
		email:     s.Email,
		phone:     strings.TrimSpace(s.Phone),
		subject:   s.Subject,
		message:   s.Message,
		category:  s.Category,
		status:    StatusNew,
		priority:  PriorityMedium,
		notes:     make([]Note, 0),
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}

	c.recordEvent(&ContactSubmittedEvent{
		ContactID:   id,
		Category:    string(s.Category),
		Subject:     s.Subject,
		SubmittedAt: now,
	})
	return c, nil
}

// ContactSnapshot is the stored state of a contact.
type ContactSnapshot struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Category   Category
	Status     Status
	Priority   Priority
	AssignedTo string
	Notes      []Note
	Read       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReconstructContact rebuilds a contact from storage.
func ReconstructContact(s ContactSnapshot) *Contact {
	notes := s.Notes
	if notes == nil {
		notes = make([]Note, 0)
	}
	return &Contact{
		id:         s.ID,
		name:       s.Name,
		email:      s.Email,
		phone:      s.Phone,
		subject:    s.Subject,
		message:    s.Message,
		category:   s.Category,
		status:     s.Status,
		priority:   s.Priority,
		assignedTo: s.AssignedTo,
		notes:      notes,
		read:       s.Read,
		createdAt:  s.CreatedAt,
		updatedAt:  s.UpdatedAt,
		changes:    NewChangeTracker(),
		events:     make([]DomainEvent, 0),
	}
}

func (c *Contact) ID() string                  { return c.id }
func (c *Contact) Name() string                { return c.name }
func (c *Contact) Email() string               { return c.email }
func (c *Contact) Phone() string               { return c.phone }
func (c *Contact) Subject() string             { return c.subject }
func (c *Contact) Message() string             { return c.message }
func (c *Contact) Category() Category          { return c.category }
func (c *Contact) Status() Status              { return c.status }
func (c *Contact) Priority() Priority          { return c.priority }
func (c *Contact) AssignedTo() string          { return c.assignedTo }
func (c *Contact) Read() bool                  { return c.read }
func (c *Contact) CreatedAt() time.Time        { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Contact) Changes() *ChangeTracker     { return c.changes }
func (c *Contact) DomainEvents() []DomainEvent { return c.events }

// Notes returns the notes in the order they were written.
func (c *Contact) Notes() []Note {
	out := make([]Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// MarkRead sets the read flag. It reports whether the flag changed.
func (c *Contact) MarkRead(now time.Time) bool {
	if c.read {
		return false
	}
	c.read = true
	c.updatedAt = now
	c.changes.MarkDirty(FieldRead)
	return true
}

// ApplyTriage changes status, priority and assignee.
func (c *Contact) ApplyTriage(t Triage, by string, now time.Time) error {
	v := apperr.NewValidation()
	if t.Status != nil {
		v.Check(t.Status.Valid(), "status", "is not a known status")
	}
	if t.Priority != nil {
		v.Check(t.Priority.Valid(), "priority", "is not a known priority")
	}
	if err := v.OrNil(); err != nil {
		return err
	}

	if t.Status != nil && *t.Status != c.status {
		c.recordEvent(&ContactStatusChangedEvent{
			ContactID: c.id,
			From:      string(c.status),
			To:        string(*t.Status),
			ChangedBy: by,
			ChangedAt: now,
		})
		c.status = *t.Status
		c.changes.MarkDirty(FieldStatus)
	}
	if t.Priority != nil && *t.Priority != c.priority {
		c.priority = *t.Priority
		c.changes.MarkDirty(FieldPriority)
	}
	if t.AssignedTo != nil {
		assignee := strings.TrimSpace(*t.AssignedTo)
		if assignee != c.assignedTo {
			c.assignedTo = assignee
			c.changes.MarkDirty(FieldAssignedTo)
		}
	}
	if c.changes.HasChanges() {
		c.updatedAt = now
	}
	return nil
}

// AddNote appends a response note.
func (c *Contact) AddNote(noteID, authorID, text string, now time.Time) (Note, error) {
	text = strings.TrimSpace(text)
	v := apperr.NewValidation()
	if v.Required("note", text) {
		v.MaxLen("note", text, maxNoteLen)
	}
	if err := v.OrNil(); err != nil {
		return Note{}, err
	}

	note := Note{ID: noteID, AuthorID: authorID, Note: text, CreatedAt: now}
	c.notes = append(c.notes, note)
	c.updatedAt = now
	return note, nil
}

func (c *Contact) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (c *Contact) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}
