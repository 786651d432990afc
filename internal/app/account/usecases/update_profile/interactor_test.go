package update_profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/account/accounttest"
	"github.com/light-bringer/estate-service/internal/app/account/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	caller := auth.Principal{UserID: "u1", Role: auth.RoleUser}

	t.Run("updates name and phone", func(t *testing.T) {
		users := accounttest.NewUsers(accounttest.User("u1", "u1@example.com", ""))
		applier := &testutil.Applier{}
		uc := NewInteractor(users, applier, clk)

		u, err := uc.Execute(ctx, &Request{Caller: caller, Name: ptr("Ravi Kumar"), Phone: ptr("9876543210")})
		require.NoError(t, err)
		assert.Equal(t, "Ravi Kumar", u.Name())
		assert.Equal(t, "9876543210", u.Phone())
		assert.Len(t, users.Updated, 1)
		assert.Len(t, applier.Plans, 1)
	})

	t.Run("nothing to change", func(t *testing.T) {
		users := accounttest.NewUsers(accounttest.User("u1", "u1@example.com", ""))
		applier := &testutil.Applier{}
		uc := NewInteractor(users, applier, clk)

		_, err := uc.Execute(ctx, &Request{Caller: caller})
		require.NoError(t, err)
		assert.Empty(t, applier.Plans)
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewInteractor(accounttest.NewUsers(accounttest.User("u1", "u1@example.com", "")), &testutil.Applier{}, clk)
		_, err := uc.Execute(ctx, &Request{Caller: caller, Name: ptr("  ")})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
	})

	t.Run("unknown caller", func(t *testing.T) {
		uc := NewInteractor(accounttest.NewUsers(), &testutil.Applier{}, clk)
		_, err := uc.Execute(ctx, &Request{Caller: caller, Name: ptr("Ravi")})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
