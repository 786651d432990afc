package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/models/m_contact_note"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// ContactRepo implements ContactRepository for Spanner.
type ContactRepo struct {
	client *spanner.Client
	model  *m_contact.Model
	notes  *m_contact_note.Model
}

// NewContactRepo creates a new ContactRepo.
func NewContactRepo(client *spanner.Client) contracts.ContactRepository {
	return &ContactRepo{
		client: client,
		model:  m_contact.NewModel(),
		notes:  m_contact_note.NewModel(),
	}
}

// InsertMut creates an insert mutation for a new submission.
func (r *ContactRepo) InsertMut(c *domain.Contact) *spanner.Mutation {
	return r.model.InsertMut(&m_contact.Data{
		ContactID:  c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      nullString(c.Phone()),
		Subject:    c.Subject(),
		Message:    c.Message(),
		Category:   string(c.Category()),
		Status:     string(c.Status()),
		Priority:   string(c.Priority()),
		AssignedTo: nullString(c.AssignedTo()),
		IsRead:     c.Read(),
	})
}

// UpdateMut creates an update mutation for the dirty triage fields.
func (r *ContactRepo) UpdateMut(c *domain.Contact) *spanner.Mutation {
	ch := c.Changes()
	if !ch.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})
	if ch.Dirty(domain.FieldStatus) {
		updates[m_contact.Status] = string(c.Status())
	}
	if ch.Dirty(domain.FieldPriority) {
		updates[m_contact.Priority] = string(c.Priority())
	}
	if ch.Dirty(domain.FieldAssignedTo) {
		updates[m_contact.AssignedTo] = nullString(c.AssignedTo())
	}
	if ch.Dirty(domain.FieldRead) {
		updates[m_contact.IsRead] = c.Read()
	}
	return r.model.UpdateMut(c.ID(), updates)
}

// DeleteMut removes a contact; notes are deleted by the interleave cascade.
func (r *ContactRepo) DeleteMut(contactID string) *spanner.Mutation {
	return r.model.DeleteMut(contactID)
}

func (r *ContactRepo) NoteInsertMut(contactID string, note domain.Note) *spanner.Mutation {
	return r.notes.InsertMut(&m_contact_note.Data{
		ContactID: contactID,
		NoteID:    note.ID,
		AuthorID:  note.AuthorID,
		Note:      note.Note,
	})
}

// GetByID loads a contact with its notes in one snapshot.
func (r *ContactRepo) GetByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	row, err := txn.ReadRow(ctx, m_contact.TableName, spanner.Key{contactID}, m_contact.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to read contact: %w", err)
	}

	var data m_contact.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse contact: %w", err)
	}

	iter := txn.Query(ctx, query.From(m_contact_note.TableName).
		Select(m_contact_note.Columns...).
		Where(query.Eq(m_contact_note.ContactID, contactID)).
		OrderBy(m_contact_note.CreatedAt, query.Asc).
		Build())
	defer iter.Stop()

	var notes []m_contact_note.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate notes: %w", err)
		}
		var n m_contact_note.Data
		if err := row.ToStruct(&n); err != nil {
			return nil, fmt.Errorf("failed to parse note: %w", err)
		}
		notes = append(notes, n)
	}

	return domain.ReconstructContact(snapshotFromData(&data, notes)), nil
}
