package change_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/propertytest"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	owner := auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}

	setup := func() (*propertytest.Repo, *testutil.Outbox, *testutil.Applier, *Interactor) {
		repo := propertytest.NewRepo(propertytest.Stored("prop-1", "agent-1", domain.StatusDraft, nil, now))
		ob := &testutil.Outbox{}
		ap := &testutil.Applier{}
		return repo, ob, ap, NewInteractor(repo, ob, ap, clock.NewMockClock(now))
	}

	tests := []struct {
		name string
		path []domain.Status
	}{
		{"publish", []domain.Status{domain.StatusActive}},
		{"sell through pending", []domain.Status{domain.StatusActive, domain.StatusPending, domain.StatusSold}},
		{"back to active", []domain.Status{domain.StatusActive, domain.StatusPending, domain.StatusActive}},
		{"retire", []domain.Status{domain.StatusActive, domain.StatusInactive}},
		{"rent out", []domain.Status{domain.StatusActive, domain.StatusRented}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, ob, ap, uc := setup()
			for _, s := range tt.path {
				require.NoError(t, uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, Status: s}))
			}
			assert.Equal(t, tt.path[len(tt.path)-1], repo.Properties["prop-1"].Status())
			assert.Len(t, ob.Events, len(tt.path))
			assert.Len(t, ap.Plans, len(tt.path))
		})
	}

	t.Run("same status is a no-op", func(t *testing.T) {
		_, ob, ap, uc := setup()
		require.NoError(t, uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, Status: domain.StatusDraft}))
		assert.Empty(t, ob.Events)
		assert.Empty(t, ap.Plans)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, _, uc := setup()
		err := uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, Status: "archived"})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
	})

	t.Run("stranger", func(t *testing.T) {
		_, _, _, uc := setup()
		err := uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: auth.Principal{UserID: "x", Role: auth.RoleAgent}, Status: domain.StatusActive})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("admin", func(t *testing.T) {
		repo, _, _, uc := setup()
		require.NoError(t, uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: auth.Principal{UserID: "a", Role: auth.RoleAdmin}, Status: domain.StatusInactive}))
		assert.Equal(t, domain.StatusInactive, repo.Properties["prop-1"].Status())
	})
}
