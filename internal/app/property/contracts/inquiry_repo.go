package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
)

// InquiryRepository stores inquiries in the property's child table.
type InquiryRepository interface {
	InsertMut(inquiry *domain.Inquiry) *spanner.Mutation

	// ListByProperty returns one page of inquiries, newest first, and the total.
	ListByProperty(ctx context.Context, propertyID string, page paging.Page) ([]domain.Inquiry, int64, error)
}
