package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/models/m_contact_note"
)

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func snapshotFromData(d *m_contact.Data, notes []m_contact_note.Data) domain.ContactSnapshot {
	snap := domain.ContactSnapshot{
		ID:         d.ContactID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone.StringVal,
		Subject:    d.Subject,
		Message:    d.Message,
		Category:   domain.Category(d.Category),
		Status:     domain.Status(d.Status),
		Priority:   domain.Priority(d.Priority),
		AssignedTo: d.AssignedTo.StringVal,
		Read:       d.IsRead,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	for _, n := range notes {
		snap.Notes = append(snap.Notes, domain.Note{
			ID:        n.NoteID,
			AuthorID:  n.AuthorID,
			Note:      n.Note,
			CreatedAt: n.CreatedAt,
		})
	}
	return snap
}

func dtoFromData(d *m_contact.Data) *contracts.ContactDTO {
	return &contracts.ContactDTO{
		ID:         d.ContactID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone.StringVal,
		Subject:    d.Subject,
		Message:    d.Message,
		Category:   d.Category,
		Status:     d.Status,
		Priority:   d.Priority,
		AssignedTo: d.AssignedTo.StringVal,
		IsRead:     d.IsRead,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
