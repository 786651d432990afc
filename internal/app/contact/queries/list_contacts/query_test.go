package list_contacts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/models/m_contact"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

type captureReadModel struct {
	got contracts.ListQuery
}

func (c *captureReadModel) ListContacts(_ context.Context, q contracts.ListQuery) ([]*contracts.ContactDTO, int64, error) {
	c.got = q
	return []*contracts.ContactDTO{{ID: "c1"}}, 21, nil
}

func (c *captureReadModel) Stats(context.Context) (*contracts.Stats, error) { return nil, nil }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		sql    string
	}{
		{"none", Filter{}, "SELECT contact_id FROM contacts"},
		{"status", Filter{Status: "in_progress"}, "SELECT contact_id FROM contacts WHERE status = @p0"},
		{
			"all",
			Filter{Status: "new", Category: "complaint", Priority: "urgent"},
			"SELECT contact_id FROM contacts WHERE status = @p0 AND category = @p1 AND priority = @p2",
		},
		{"unknown values dropped", Filter{Status: "open", Category: "spam", Priority: "p1"}, "SELECT contact_id FROM contacts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := query.From(m_contact.TableName).Select(m_contact.ContactID).WhereAll(BuildFilter(tt.filter)).Build()
			assert.Equal(t, tt.sql, stmt.SQL)
		})
	}
}

func TestListContacts(t *testing.T) {
	ctx := context.Background()
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("default page size", func(t *testing.T) {
		rm := &captureReadModel{}
		res, err := NewQuery(rm).Execute(ctx, &Request{Caller: admin})
		require.NoError(t, err)
		assert.Equal(t, int64(10), rm.got.Page.Limit())
		assert.Equal(t, int64(3), res.Meta.Pages)
		assert.Equal(t, 1, res.Meta.Count)
	})

	t.Run("admins only", func(t *testing.T) {
		_, err := NewQuery(&captureReadModel{}).Execute(ctx, &Request{Caller: auth.Principal{UserID: "u1", Role: auth.RoleUser}})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})
}
