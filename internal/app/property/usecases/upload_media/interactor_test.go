package upload_media

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

func TestUploadMedia(t *testing.T) {
	ctx := context.Background()
	agent := auth.Principal{UserID: "agent-1", Role: auth.RoleAgent}

	setup := func() (*propertytest.MediaStore, *Interactor) {
		store := propertytest.NewMediaStore()
		return store, NewInteractor(media.NewUploader(store, "estate"), media.Limits{MaxFiles: 2, MaxBytes: 16})
	}

	t.Run("returns objects in input order", func(t *testing.T) {
		store, uc := setup()
		objs, err := uc.Execute(ctx, &Request{Caller: agent, Files: []media.File{
			propertytest.File("a.jpg", "image/jpeg", "first"),
			propertytest.File("b.webp", "image/webp", "second"),
		}})
		require.NoError(t, err)
		require.Len(t, objs, 2)
		assert.Equal(t, []byte("first"), store.Objects[objs[0].PublicID])
		assert.Equal(t, []byte("second"), store.Objects[objs[1].PublicID])
		assert.Contains(t, objs[1].PublicID, ".webp")
	})

	t.Run("too many files", func(t *testing.T) {
		_, uc := setup()
		f := propertytest.File("a.jpg", "image/jpeg", "x")
		_, err := uc.Execute(ctx, &Request{Caller: agent, Files: []media.File{f, f, f}})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
	})

	t.Run("partial failure keeps uploaded files", func(t *testing.T) {
		store, uc := setup()
		store.FailPut = "bad"
		_, err := uc.Execute(ctx, &Request{Caller: agent, Files: []media.File{
			propertytest.File("c.jpg", "image/jpeg", "good"),
			propertytest.File("d.jpg", "image/jpeg", "bad"),
		}})
		assert.Error(t, err)
		assert.Contains(t, values(store), "good")
	})

	t.Run("users cannot upload", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: auth.Principal{UserID: "u", Role: auth.RoleUser}})
		assert.ErrorIs(t, err, domain.ErrNotAgent)
	})
}

func values(s *propertytest.MediaStore) []string {
	out := make([]string, 0, len(s.Objects))
	for _, v := range s.Objects {
		out = append(out, string(v))
	}
	return out
}
