package set_primary_image

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/propertytest"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func TestSetPrimaryImage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	owner := auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}

	setup := func() (*testutil.Applier, *Interactor) {
		images := []domain.Image{
			{ID: "img-1", IsPrimary: true, Position: 0},
			{ID: "img-2", Position: 1},
		}
		repo := propertytest.NewRepo(propertytest.Stored("prop-1", "agent-1", domain.StatusActive, images, now))
		ap := &testutil.Applier{}
		return ap, NewInteractor(repo, &testutil.Outbox{}, ap, clock.NewMockClock(now))
	}

	t.Run("exactly one primary after the change", func(t *testing.T) {
		ap, uc := setup()
		images, err := uc.Execute(ctx, &Request{PropertyID: "prop-1", ImageID: "img-2", Caller: owner})
		require.NoError(t, err)
		assert.False(t, images[0].IsPrimary)
		assert.True(t, images[1].IsPrimary)
		assert.Len(t, ap.Plans, 1)
	})

	t.Run("already primary writes nothing", func(t *testing.T) {
		ap, uc := setup()
		_, err := uc.Execute(ctx, &Request{PropertyID: "prop-1", ImageID: "img-1", Caller: owner})
		require.NoError(t, err)
		assert.Empty(t, ap.Plans)
	})

	t.Run("unknown image", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Execute(ctx, &Request{PropertyID: "prop-1", ImageID: "nope", Caller: owner})
		assert.ErrorIs(t, err, domain.ErrImageNotFound)
	})
}
