package delete_contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/contact/contacttest"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func TestDeleteContact(t *testing.T) {
	ctx := context.Background()
	admin := auth.Principal{UserID: "admin-1", Role: auth.RoleAdmin}

	t.Run("deletes", func(t *testing.T) {
		repo := contacttest.NewContacts(contacttest.Stored("c1"))
		applier := &testutil.Applier{}
		require.NoError(t, NewInteractor(repo, applier).Execute(ctx, &Request{Caller: admin, ContactID: "c1"}))
		assert.Equal(t, []string{"c1"}, repo.Deleted)
		assert.Len(t, applier.Plans, 1)
	})

	t.Run("missing", func(t *testing.T) {
		err := NewInteractor(contacttest.NewContacts(), &testutil.Applier{}).Execute(ctx, &Request{Caller: admin, ContactID: "c1"})
		assert.ErrorIs(t, err, domain.ErrContactNotFound)
	})

	t.Run("admins only", func(t *testing.T) {
		err := NewInteractor(contacttest.NewContacts(contacttest.Stored("c1")), &testutil.Applier{}).
			Execute(ctx, &Request{Caller: auth.Principal{UserID: "a1", Role: auth.RoleAgent}, ContactID: "c1"})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})
}
