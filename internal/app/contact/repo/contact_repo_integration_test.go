//go:build integration

package repo

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/contact/contracts"
	"github.com/light-bringer/estate-service/internal/app/contact/domain"
	"github.com/light-bringer/estate-service/internal/pkg/paging"
	"github.com/light-bringer/estate-service/internal/testutil"
)

func insertContact(t *testing.T, client *spanner.Client, id string, category domain.Category) *domain.Contact {
	t.Helper()
	c, err := domain.NewContact(id, domain.Submission{
		Name: "Asha", Email: "asha@example.com", Subject: "Visit", Message: "Saturday?", Category: category,
	}, time.Now().UTC())
	require.NoError(t, err)
	_, err = client.Apply(context.Background(), []*spanner.Mutation{NewContactRepo(client).InsertMut(c)})
	require.NoError(t, err)
	return c
}

func TestContactRepository_NotesAndTriage(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	ctx := context.Background()
	repository := NewContactRepo(client)
	insertContact(t, client, "c-1", domain.CategoryProperty)

	c, err := repository.GetByID(ctx, "c-1")
	require.NoError(t, err)

	now := time.Now().UTC()
	note, err := c.AddNote("n-1", "admin-1", "Called back", now)
	require.NoError(t, err)
	resolved := domain.StatusResolved
	require.NoError(t, c.ApplyTriage(domain.Triage{Status: &resolved}, "admin-1", now))

	muts := []*spanner.Mutation{repository.NoteInsertMut("c-1", note)}
	if mut := repository.UpdateMut(c); mut != nil {
		muts = append(muts, mut)
	}
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)

	got, err := repository.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, got.Status())
	require.Len(t, got.Notes(), 1)
	assert.Equal(t, "Called back", got.Notes()[0].Note)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.DeleteMut("c-1")})
	require.NoError(t, err)
	testutil.AssertRowCount(t, client, "contact_notes", 0)

	_, err = repository.GetByID(ctx, "c-1")
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestContactReadModel_ListAndStats(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	ctx := context.Background()
	insertContact(t, client, "c-1", domain.CategoryProperty)
	insertContact(t, client, "c-2", domain.CategoryAgent)
	insertContact(t, client, "c-3", domain.CategoryAgent)

	rm := NewReadModel(client)
	page, err := paging.NewPage(1, 2)
	require.NoError(t, err)

	rows, total, err := rm.ListContacts(ctx, contracts.ListQuery{Page: page})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rows, 2)

	stats, err := rm.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Unread)
	assert.Equal(t, int64(2), stats.ByCategory["agent"])
}
