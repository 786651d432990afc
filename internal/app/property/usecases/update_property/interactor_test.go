package update_property

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

var now = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

type fixture struct {
	repo    *propertytest.Repo
	outbox  *testutil.Outbox
	history *propertytest.PriceHistory
	applier *testutil.Applier
	uc      *Interactor
}

func newFixture() *fixture {
	f := &fixture{
		repo:    propertytest.NewRepo(propertytest.Stored("prop-1", "agent-1", domain.StatusActive, nil, now)),
		outbox:  &testutil.Outbox{},
		history: &propertytest.PriceHistory{},
		applier: &testutil.Applier{},
	}
	f.uc = NewInteractor(f.repo, f.outbox, f.history, f.applier, clock.NewMockClock(now.Add(time.Hour)))
	return f
}

func ptr[T any](v T) *T { return &v }

func TestUpdateProperty(t *testing.T) {
	ctx := context.Background()
	owner := auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("owner changes price and title", func(t *testing.T) {
		f := newFixture()
		price := propertytest.Details().Price
		price.Amount = domain.NewMoneyFromInt(11000000)

		err := f.uc.Execute(ctx, &Request{
			PropertyID: "prop-1",
			Caller:     owner,
			Update:     domain.Update{Title: ptr("Garden villa, reduced"), Price: &price},
		})
		require.NoError(t, err)

		p := f.repo.Properties["prop-1"]
		assert.Equal(t, "Garden villa, reduced", p.Title())
		assert.Equal(t, "11000000.00", p.Price().Amount.String())
		require.Len(t, f.history.Changes, 1)
		assert.Equal(t, "12500000.00", f.history.Changes[0].Old.String())
		assert.Equal(t, "11000000.00", f.history.Changes[0].New.String())
		assert.ElementsMatch(t, []string{"property.updated", "property.price_changed"}, f.outbox.Types())
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("unchanged price writes no history", func(t *testing.T) {
		f := newFixture()
		price := propertytest.Details().Price

		require.NoError(t, f.uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, Update: domain.Update{Price: &price}}))
		assert.Empty(t, f.history.Changes)
		assert.Empty(t, f.applier.Plans)
	})

	t.Run("other agents are rejected", func(t *testing.T) {
		f := newFixture()
		err := f.uc.Execute(ctx, &Request{
			PropertyID: "prop-1",
			Caller:     auth.Principal{UserID: "agent-2", Role: auth.RoleAgent},
			Update:     domain.Update{Title: ptr("mine now")},
		})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("featured is admin only", func(t *testing.T) {
		f := newFixture()
		err := f.uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: owner, Update: domain.Update{Featured: ptr(true)}})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)

		require.NoError(t, f.uc.Execute(ctx, &Request{PropertyID: "prop-1", Caller: admin, Update: domain.Update{Featured: ptr(true), Verified: ptr(true)}}))
		p := f.repo.Properties["prop-1"]
		assert.True(t, p.Featured())
		assert.True(t, p.Verified())
	})

	t.Run("invalid update leaves the listing untouched", func(t *testing.T) {
		f := newFixture()
		err := f.uc.Execute(ctx, &Request{
			PropertyID: "prop-1",
			Caller:     owner,
			Update:     domain.Update{Title: ptr("new"), Status: ptr(domain.Status("archived"))},
		})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
		assert.Equal(t, "Garden villa", f.repo.Properties["prop-1"].Title())
		assert.Empty(t, f.applier.Plans)
	})

	t.Run("missing listing", func(t *testing.T) {
		f := newFixture()
		err := f.uc.Execute(ctx, &Request{PropertyID: "nope", Caller: owner})
		assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	})
}
