package list_properties

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

type fakeReadModel struct {
	calls int
	last  contracts.ListQuery
	rows  []*contracts.PropertyDTO
	total int64
}

func (f *fakeReadModel) GetProperty(context.Context, string) (*contracts.PropertyDTO, error) {
	return nil, nil
}

func (f *fakeReadModel) ListProperties(_ context.Context, q contracts.ListQuery) ([]*contracts.PropertyDTO, int64, error) {
	f.calls++
	f.last = q
	return f.rows, f.total, nil
}

type mapCache struct {
	data map[string]*Result
}

func (m *mapCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	r, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*dest.(*Result) = *r
	return true, nil
}

func (m *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.data[key] = value.(*Result)
	return nil
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("pages and meta", func(t *testing.T) {
		rm := &fakeReadModel{rows: []*contracts.PropertyDTO{{ID: "a"}, {ID: "b"}}, total: 26}
		q := NewQuery(rm, &mapCache{data: map[string]*Result{}}, time.Minute)

		res, err := q.Execute(ctx, &Request{Page: "3", Limit: "12"})
		require.NoError(t, err)

		assert.Equal(t, int64(24), rm.last.Page.Offset())
		assert.Equal(t, int64(12), rm.last.Page.Limit())
		assert.Equal(t, 2, res.Meta.Count)
		assert.Equal(t, int64(26), res.Meta.Total)
		assert.Equal(t, int64(3), res.Meta.Pages)
		assert.LessOrEqual(t, res.Meta.Count, rm.last.Page.Size)
	})

	t.Run("invalid paging is rejected before reading", func(t *testing.T) {
		rm := &fakeReadModel{}
		q := NewQuery(rm, &mapCache{data: map[string]*Result{}}, time.Minute)

		_, err := q.Execute(ctx, &Request{Limit: "51"})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
		assert.Zero(t, rm.calls)
	})

	t.Run("unknown sort key is rejected", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{}, &mapCache{data: map[string]*Result{}}, time.Minute)
		_, err := q.Execute(ctx, &Request{Sort: "bogus"})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
	})

	t.Run("public searches are cached", func(t *testing.T) {
		rm := &fakeReadModel{rows: []*contracts.PropertyDTO{{ID: "a"}}, total: 1}
		q := NewQuery(rm, &mapCache{data: map[string]*Result{}}, time.Minute)
		req := &Request{Filter: Filter{City: "Delhi"}}

		_, err := q.Execute(ctx, req)
		require.NoError(t, err)
		res, err := q.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 1, rm.calls)
		assert.Equal(t, "a", res.Properties[0].ID)
	})

	t.Run("own listings bypass the cache", func(t *testing.T) {
		rm := &fakeReadModel{}
		q := NewQuery(rm, &mapCache{data: map[string]*Result{}}, time.Minute)
		req := &Request{
			Filter: Filter{Mine: true},
			Caller: &auth.Principal{UserID: "agent-1", Role: auth.RoleAgent},
		}

		_, err := q.Execute(ctx, req)
		require.NoError(t, err)
		_, err = q.Execute(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 2, rm.calls)
	})
}
