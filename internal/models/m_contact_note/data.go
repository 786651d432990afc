package m_contact_note

import "time"

// Data represents a response note on a contact submission.
type Data struct {
	ContactID string    `spanner:"contact_id"`
	NoteID    string    `spanner:"note_id"`
	AuthorID  string    `spanner:"author_id"`
	Note      string    `spanner:"note"`
	CreatedAt time.Time `spanner:"created_at"`
}
