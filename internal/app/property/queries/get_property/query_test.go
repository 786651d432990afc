package get_property

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

type fakeReadModel struct {
	dto *contracts.PropertyDTO
}

func (f *fakeReadModel) GetProperty(context.Context, string) (*contracts.PropertyDTO, error) {
	if f.dto == nil {
		return nil, domain.ErrPropertyNotFound
	}
	cp := *f.dto
	return &cp, nil
}

func (f *fakeReadModel) ListProperties(context.Context, contracts.ListQuery) ([]*contracts.PropertyDTO, int64, error) {
	return nil, 0, nil
}

type fakeRepo struct {
	contracts.PropertyRepository
	views int
	err   error
}

func (f *fakeRepo) IncrementCounter(_ context.Context, _ string, c contracts.Counter) error {
	if f.err != nil {
		return f.err
	}
	if c == contracts.CounterViews {
		f.views++
	}
	return nil
}

func (f *fakeRepo) DeleteMut(string) *spanner.Mutation { return nil }

func listing(status domain.Status) *contracts.PropertyDTO {
	return &contracts.PropertyDTO{
		ID:     "prop-1",
		Status: string(status),
		Views:  10,
		Agent:  contracts.AgentSummary{ID: "agent-1"},
	}
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	owner := &auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}
	stranger := &auth.Principal{UserID: "user-9", Role: auth.RoleUser}
	admin := &auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("anonymous view of active listing counts a view", func(t *testing.T) {
		repo := &fakeRepo{}
		q := NewQuery(&fakeReadModel{dto: listing(domain.StatusActive)}, repo)

		dto, err := q.Execute(ctx, &Request{PropertyID: "prop-1", CountView: true})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.views)
		assert.Equal(t, int64(11), dto.Views)
	})

	t.Run("owner view is not counted", func(t *testing.T) {
		repo := &fakeRepo{}
		q := NewQuery(&fakeReadModel{dto: listing(domain.StatusActive)}, repo)

		_, err := q.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, CountView: true})
		require.NoError(t, err)
		assert.Zero(t, repo.views)
	})

	t.Run("draft hidden from strangers", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{dto: listing(domain.StatusDraft)}, &fakeRepo{})

		_, err := q.Execute(ctx, &Request{PropertyID: "prop-1", Caller: stranger})
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, err = q.Execute(ctx, &Request{PropertyID: "prop-1"})
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})

	t.Run("draft visible to owner and admin", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{dto: listing(domain.StatusDraft)}, &fakeRepo{})

		_, err := q.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner})
		assert.NoError(t, err)
		_, err = q.Execute(ctx, &Request{PropertyID: "prop-1", Caller: admin})
		assert.NoError(t, err)
	})

	t.Run("counter failure does not fail the read", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{dto: listing(domain.StatusActive)}, &fakeRepo{err: errors.New("spanner down")})

		dto, err := q.Execute(ctx, &Request{PropertyID: "prop-1", CountView: true})
		require.NoError(t, err)
		assert.Equal(t, int64(10), dto.Views)
	})
}
