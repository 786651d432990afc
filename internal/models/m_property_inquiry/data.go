package m_property_inquiry

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the property_inquiries child table.
type Data struct {
	PropertyID string             `spanner:"property_id"`
	InquiryID  string             `spanner:"inquiry_id"`
	UserID     spanner.NullString `spanner:"user_id"`
	Name       string             `spanner:"name"`
	Email      string             `spanner:"email"`
	Phone      spanner.NullString `spanner:"phone"`
	Message    string             `spanner:"message"`
	CreatedAt  time.Time          `spanner:"created_at"`
}
