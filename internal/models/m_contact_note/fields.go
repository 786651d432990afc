package m_contact_note

const (
	TableName = "contact_notes"

	ContactID = "contact_id"
	NoteID    = "note_id"
	AuthorID  = "author_id"
	Note      = "note"
	CreatedAt = "created_at"
)

var Columns = []string{ContactID, NoteID, AuthorID, Note, CreatedAt}
