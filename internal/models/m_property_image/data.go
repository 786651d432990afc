package m_property_image

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents a row of the property_images child table.
type Data struct {
	PropertyID string             `spanner:"property_id"`
	ImageID    string             `spanner:"image_id"`
	URL        string             `spanner:"url"`
	PublicID   string             `spanner:"public_id"`
	Caption    spanner.NullString `spanner:"caption"`
	IsPrimary  bool               `spanner:"is_primary"`
	Position   int64              `spanner:"position"`
	CreatedAt  time.Time          `spanner:"created_at"`
}
