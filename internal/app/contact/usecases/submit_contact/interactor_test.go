package submit_contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/contact/contacttest"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/clock"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func TestSubmitContact(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	t.Run("stores and emits", func(t *testing.T) {
		repo := contacttest.NewContacts()
		ob := &testutil.Outbox{}
		applier := &testutil.Applier{}
		uc := NewInteractor(repo, ob, applier, clk)

		c, err := uc.Execute(ctx, &domain.Submission{
			Name: "Asha", Email: "asha@example.com", Subject: "Visit", Message: "Saturday?",
			Category: domain.CategoryProperty,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID())
		assert.Len(t, repo.Inserted, 1)
		assert.Equal(t, []string{"contact.submitted"}, ob.Types())
		assert.Equal(t, 2, applier.Mutations())
		assert.Empty(t, c.DomainEvents())
	})

	t.Run("invalid submission writes nothing", func(t *testing.T) {
		applier := &testutil.Applier{}
		uc := NewInteractor(contacttest.NewContacts(), &testutil.Outbox{}, applier, clk)
		_, err := uc.Execute(ctx, &domain.Submission{Name: "Asha"})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
		assert.Empty(t, applier.Plans)
	})

	t.Run("commit failure", func(t *testing.T) {
		applier := &testutil.Applier{Err: errors.New("unavailable")}
		uc := NewInteractor(contacttest.NewContacts(), &testutil.Outbox{}, applier, clk)
		_, err := uc.Execute(ctx, &domain.Submission{Name: "Asha", Email: "asha@example.com", Subject: "S", Message: "M"})
		assert.ErrorContains(t, err, "failed to commit transaction")
	})
}
