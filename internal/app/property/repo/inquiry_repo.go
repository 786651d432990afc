package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/models/m_property_inquiry"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

// InquiryRepo implements InquiryRepository for Spanner.
type InquiryRepo struct {
	client *spanner.Client
	model  *m_property_inquiry.Model
}

// NewInquiryRepo creates a new InquiryRepo.
func NewInquiryRepo(client *spanner.Client) contracts.InquiryRepository {
	return &InquiryRepo{
		client: client,
		model:  m_property_inquiry.NewModel(),
	}
}

// InsertMut creates a mutation for a new inquiry.
func (r *InquiryRepo) InsertMut(inq *domain.Inquiry) *spanner.Mutation {
	return r.model.InsertMut(&m_property_inquiry.Data{
		PropertyID: inq.PropertyID,
		InquiryID:  inq.ID,
		UserID:     nullString(inq.UserID),
		Name:       inq.Name,
		Email:      inq.Email,
		Phone:      nullString(inq.Phone),
		Message:    inq.Message,
	})
}

// ListByProperty returns one page of inquiries, newest first.
func (r *InquiryRepo) ListByProperty(ctx context.Context, propertyID string, page paging.Page) ([]domain.Inquiry, int64, error) {
	base := query.From(m_property_inquiry.TableName).
		Select(m_property_inquiry.Columns...).
		Where(query.Eq(m_property_inquiry.PropertyID, propertyID))

	txn := r.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := countRows(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, 0, err
	}

	iter := txn.Query(ctx, base.
		OrderBy(m_property_inquiry.CreatedAt, query.Desc).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Build())
	defer iter.Stop()

	out := make([]domain.Inquiry, 0, page.Size)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("failed to iterate inquiries: %w", err)
		}
		var data m_property_inquiry.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, 0, fmt.Errorf("failed to parse inquiry: %w", err)
		}
		out = append(out, inquiryFromData(&data))
	}
	return out, total, nil
}

func inquiryFromData(d *m_property_inquiry.Data) domain.Inquiry {
	return domain.Inquiry{
		ID:         d.InquiryID,
		PropertyID: d.PropertyID,
		UserID:     d.UserID.StringVal,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone.StringVal,
		Message:    d.Message,
		CreatedAt:  d.CreatedAt,
	}
}
