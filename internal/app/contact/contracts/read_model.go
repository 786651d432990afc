package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

type ContactDTO struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Subject    string        `json:"subject"`
	Message    string        `json:"message"`
	Category   string        `json:"category"`
	Status     string        `json:"status"`
	Priority   string        `json:"priority"`
	AssignedTo string        `json:"assignedTo,omitempty"`
	Notes      []domain.Note `json:"responseNotes,omitempty"`
	IsRead     bool          `json:"isRead"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// NewContactDTO converts an aggregate into its API shape.
func NewContactDTO(c *domain.Contact) *ContactDTO {
	return &ContactDTO{
		ID:         c.ID(),
		Name:       c.Name(),
		Email:      c.Email(),
		Phone:      c.Phone(),
		Subject:    c.Subject(),
		Message:    c.Message(),
		Category:   string(c.Category()),
		Status:     string(c.Status()),
		Priority:   string(c.Priority()),
		AssignedTo: c.AssignedTo(),
		Notes:      c.Notes(),
		IsRead:     c.Read(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

// Stats is the admin overview of the contact inbox.
type Stats struct {
	Total      int64            `json:"total"`
	Unread     int64            `json:"unread"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByCategory map[string]int64 `json:"byCategory"`
	ByPriority map[string]int64 `json:"byPriority"`
}

type ListQuery struct {
	Conditions []query.Condition
	Page       paging.Page
}

// ReadModel defines the interface for contact queries.
type ReadModel interface {
	// ListContacts returns one page, newest first, without notes.
	ListContacts(ctx context.Context, q ListQuery) ([]*ContactDTO, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}
