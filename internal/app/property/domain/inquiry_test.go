package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/pkg/apperr"
)

func TestNewInquiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		inq, err := NewInquiry("inq-1", "prop-1", "", " Asha ", "Asha@Example.com", "", "Is it still available?", now)
		require.NoError(t, err)
		assert.Equal(t, "Asha", inq.Name)
		assert.Equal(t, "asha@example.com", inq.Email)
		assert.Empty(t, inq.UserID)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewInquiry("inq-1", "prop-1", "", "", "nope", "", "", now)
		v, ok := apperr.AsValidation(err)
		require.True(t, ok)
		assert.Len(t, v.Fields, 3)
	})
}

func TestMergeRecentInquiries(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	at := func(id string, minutes int) Inquiry {
		return Inquiry{ID: id, CreatedAt: base.Add(time.Duration(minutes) * time.Minute)}
	}

	lists := [][]Inquiry{
		{at("a1", 1), at("a2", 7)},
		{at("b1", 3), at("b2", 9), at("b3", 2)},
		{},
		{at("c1", 8), at("c2", 5)},
	}

	merged := MergeRecentInquiries(lists, RecentInquiryLimit)

	ids := make([]string, 0, len(merged))
	for _, inq := range merged {
		ids = append(ids, inq.ID)
	}
	assert.Equal(t, []string{"b2", "c1", "a2", "c2", "b1"}, ids)

	t.Run("fewer than limit", func(t *testing.T) {
		assert.Len(t, MergeRecentInquiries([][]Inquiry{{at("x", 1)}}, 5), 1)
	})

	t.Run("no lists", func(t *testing.T) {
		assert.Empty(t, MergeRecentInquiries(nil, 5))
	})
}

func TestBuildDashboard(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := BuildDashboard(
		[]StatusBucket{
			{Status: StatusActive, Count: 3, Views: 120},
			{Status: StatusSold, Count: 1, Views: 40},
		},
		7,
		[][]Inquiry{{{ID: "x", CreatedAt: base}}},
	)

	assert.Equal(t, int64(4), d.TotalProperties)
	assert.Equal(t, int64(160), d.TotalViews)
	assert.Equal(t, int64(7), d.TotalInquiries)
	assert.Equal(t, int64(3), d.StatusCounts[StatusActive])
	assert.Equal(t, int64(0), d.StatusCounts[StatusDraft])
	assert.Len(t, d.StatusCounts, len(Statuses))
	assert.Len(t, d.RecentInquiries, 1)
}
