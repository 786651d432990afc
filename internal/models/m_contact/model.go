package m_contact

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the contacts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a contact submission.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ContactID,
			data.Name,
			data.Email,
			data.Phone,
			data.Subject,
			data.Message,
			data.Category,
			data.Status,
			data.Priority,
			data.AssignedTo,
			data.IsRead,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific contact fields.
func (m *Model) UpdateMut(contactID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, ContactID)
	values = append(values, contactID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut deletes a contact; its notes cascade.
func (m *Model) DeleteMut(contactID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{contactID})
}
