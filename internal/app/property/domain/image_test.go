package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primaryCount(p *Property) int {
	n := 0
	for _, img := range p.Images() {
		if img.IsPrimary {
			n++
		}
	}
	return n
}

func TestPropertyImages(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	withImages := func(t *testing.T, ids ...string) *Property {
		t.Helper()
		p := newTestProperty(t, now)
		imgs := make([]Image, 0, len(ids))
		for _, id := range ids {
			imgs = append(imgs, Image{ID: id, URL: "https://cdn.example/" + id, PublicID: "estate/" + id, IsPrimary: true})
		}
		p.AddImages(imgs, now)
		return p
	}

	t.Run("first added image becomes primary", func(t *testing.T) {
		p := withImages(t, "a", "b", "c")

		primary, ok := p.PrimaryImage()
		require.True(t, ok)
		assert.Equal(t, "a", primary.ID)
		assert.Equal(t, 1, primaryCount(p))
		assert.True(t, p.Changes().Dirty(FieldImages))
	})

	t.Run("later uploads keep the existing primary", func(t *testing.T) {
		p := withImages(t, "a")
		p.AddImages([]Image{{ID: "b"}, {ID: "c"}}, now)

		primary, _ := p.PrimaryImage()
		assert.Equal(t, "a", primary.ID)
		assert.Equal(t, 1, primaryCount(p))

		imgs := p.Images()
		require.Len(t, imgs, 3)
		assert.Equal(t, int64(2), imgs[2].Position)
	})

	t.Run("removing the primary promotes exactly one image", func(t *testing.T) {
		p := withImages(t, "a", "b", "c")

		removed, err := p.RemoveImage("a", now)
		require.NoError(t, err)

		assert.Equal(t, "estate/a", removed.PublicID)
		assert.Equal(t, 1, primaryCount(p))
		primary, _ := p.PrimaryImage()
		assert.Equal(t, "b", primary.ID)
		assert.Equal(t, []string{"a"}, p.RemovedImageIDs())
	})

	t.Run("removing a secondary image keeps the primary", func(t *testing.T) {
		p := withImages(t, "a", "b")

		_, err := p.RemoveImage("b", now)
		require.NoError(t, err)

		primary, _ := p.PrimaryImage()
		assert.Equal(t, "a", primary.ID)
		assert.Len(t, p.Images(), 1)
	})

	t.Run("removing the last image leaves no primary", func(t *testing.T) {
		p := withImages(t, "a")

		_, err := p.RemoveImage("a", now)
		require.NoError(t, err)

		_, ok := p.PrimaryImage()
		assert.False(t, ok)
		assert.Empty(t, p.Images())
	})

	t.Run("set primary moves the flag", func(t *testing.T) {
		p := withImages(t, "a", "b", "c")

		require.NoError(t, p.SetPrimaryImage("c", now))

		primary, _ := p.PrimaryImage()
		assert.Equal(t, "c", primary.ID)
		assert.Equal(t, 1, primaryCount(p))
	})

	t.Run("unknown image", func(t *testing.T) {
		p := withImages(t, "a")

		_, err := p.RemoveImage("zzz", now)
		assert.ErrorIs(t, err, ErrImageNotFound)
		assert.ErrorIs(t, p.SetPrimaryImage("zzz", now), ErrImageNotFound)
	})
}
