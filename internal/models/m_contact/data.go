package m_contact

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the contacts table.
type Data struct {
	ContactID  string             `spanner:"contact_id"`
	Name       string             `spanner:"name"`
	Email      string             `spanner:"email"`
	Phone      spanner.NullString `spanner:"phone"`
	Subject    string             `spanner:"subject"`
	Message    string             `spanner:"message"`
	Category   string             `spanner:"category"`
	Status     string             `spanner:"status"`
	Priority   string             `spanner:"priority"`
	AssignedTo spanner.NullString `spanner:"assigned_to"`
	IsRead     bool               `spanner:"is_read"`
	CreatedAt  time.Time          `spanner:"created_at"`
	UpdatedAt  time.Time          `spanner:"updated_at"`
}
