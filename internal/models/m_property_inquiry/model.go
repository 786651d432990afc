package m_property_inquiry

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe operations on the property_inquiries table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting an inquiry.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.PropertyID,
			data.InquiryID,
			data.UserID,
			data.Name,
			data.Email,
			data.Phone,
			data.Message,
			spanner.CommitTimestamp,
		},
	)
}
