package site_stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/admin/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
)

type fakeReadModel struct {
	counts domain.Counts
	err    error
}

func (f *fakeReadModel) Counts(context.Context) (domain.Counts, error) { return f.counts, f.err }

func TestSiteStats(t *testing.T) {
	ctx := context.Background()
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("admin", func(t *testing.T) {
		rm := &fakeReadModel{counts: domain.Counts{UsersByRole: map[string]int64{"user": 3}, TotalViews: 9}}
		s, err := NewQuery(rm).Execute(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, int64(3), s.Users.Total)
		assert.Equal(t, int64(9), s.TotalViews)
	})

	t.Run("non-admin", func(t *testing.T) {
		_, err := NewQuery(&fakeReadModel{}).Execute(ctx, auth.Principal{UserID: "a1", Role: auth.RoleAgent})
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("storage error", func(t *testing.T) {
		_, err := NewQuery(&fakeReadModel{err: errors.New("unavailable")}).Execute(ctx, admin)
		assert.Error(t, err)
	})
}
