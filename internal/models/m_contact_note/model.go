package m_contact_note

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe operations on the contact_notes table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for appending a note.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.ContactID,
			data.NoteID,
			data.AuthorID,
			data.Note,
			spanner.CommitTimestamp,
		},
	)
}
