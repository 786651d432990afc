package open_contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/contact/contacttest"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func TestOpenContact(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("first open marks read", func(t *testing.T) {
		repo := contacttest.NewContacts(contacttest.Stored("c1"))
		applier := &testutil.Applier{}
		uc := NewInteractor(repo, applier, clk)

		c, err := uc.Execute(ctx, &Request{Caller: admin, ContactID: "c1"})
		require.NoError(t, err)
		assert.True(t, c.Read())
		assert.Len(t, applier.Plans, 1)

		_, err = uc.Execute(ctx, &Request{Caller: admin, ContactID: "c1"})
		require.NoError(t, err)
		assert.Len(t, applier.Plans, 1)
	})

	t.Run("admins only", func(t *testing.T) {
		uc := NewInteractor(contacttest.NewContacts(contacttest.Stored("c1")), &testutil.Applier{}, clk)
		_, err := uc.Execute(ctx, &Request{Caller: auth.Principal{UserID: "a1", Role: auth.RoleAgent}, ContactID: "c1"})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})

	t.Run("missing", func(t *testing.T) {
		uc := NewInteractor(contacttest.NewContacts(), &testutil.Applier{}, clk)
		_, err := uc.Execute(ctx, &Request{Caller: admin, ContactID: "nope"})
		assert.ErrorIs(t, err, domain.ErrContactNotFound)
	})
}
