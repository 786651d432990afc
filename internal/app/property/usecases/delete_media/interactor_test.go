package delete_media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/domain"
	"github.com/light-bringer/estate-service/internal/app/property/propertytest"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/auth"
	"github.com/light-bringer/estate-service/internal/pkg/media"
)

func TestDeleteMedia(t *testing.T) {
	ctx := context.Background()
	store := propertytest.NewMediaStore()
	uc := NewInteractor(media.NewUploader(store, "estate/properties"))
	agent := auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}

	require.NoError(t, uc.Execute(ctx, &Request{Caller: agent, PublicID: "estate/properties/a.jpg"}))
	assert.Equal(t, []string{"estate/properties/a.jpg"}, store.Deleted)

	for _, id := range []string{"", "other/a.jpg", "estate/properties/../secrets.txt", "estate/properties"} {
		err := uc.Execute(ctx, &Request{Caller: agent, PublicID: id})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok, id)
	}

	err := uc.Execute(ctx, &Request{Caller: auth.Principal{UserID: "u", Role: auth.RoleUser}, PublicID: "estate/properties/a.jpg"})
	assert.ErrorIs(t, err, domain.ErrNotAgent)
}
