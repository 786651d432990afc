// Package contacttest provides in-memory fakes of the contact contracts.
package contacttest

import (
	"context"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/contact/domain"
)

// Contacts is an in-memory ContactRepository.
type Contacts struct {
	mu       sync.Mutex
	ByID     map[string]*domain.Contact
	Inserted []*domain.Contact
	Updated  []*domain.Contact
	Deleted  []string
	Notes    []domain.Note
}

func NewContacts(contacts ...*domain.Contact) *Contacts {
	r := &Contacts{ByID: map[string]*domain.Contact{}}
	for _, c := range contacts {
		r.ByID[c.ID()] = c
	}
	return r
}

func (r *Contacts) InsertMut(c *domain.Contact) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Inserted = append(r.Inserted, c)
	r.ByID[c.ID()] = c
	return spanner.Delete("contacts", spanner.Key{c.ID()})
}

func (r *Contacts) UpdateMut(c *domain.Contact) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !c.Changes().HasChanges() {
		return nil
	}
	r.Updated = append(r.Updated, c)
	return spanner.Delete("contacts", spanner.Key{c.ID()})
}

func (r *Contacts) DeleteMut(contactID string) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deleted = append(r.Deleted, contactID)
	return spanner.Delete("contacts", spanner.Key{contactID})
}

func (r *Contacts) NoteInsertMut(contactID string, note domain.Note) *spanner.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notes = append(r.Notes, note)
	return spanner.Delete("contact_notes", spanner.Key{contactID, note.ID})
}

func (r *Contacts) GetByID(_ context.Context, contactID string) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.ByID[contactID]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	return c, nil
}

// Stored returns an unread contact in status new.
func Stored(id string) *domain.Contact {
	return domain.ReconstructContact(domain.ContactSnapshot{
		ID:       id,
		Name:     "Asha",
		Email:    "asha@example.com",
		Subject:  "Site visit",
		Message:  "Is the villa still available?",
		Category: domain.CategoryProperty,
		Status:   domain.StatusNew,
		Priority: domain.PriorityMedium,
	})
}
