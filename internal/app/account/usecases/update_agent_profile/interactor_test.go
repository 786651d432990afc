package update_agent_profile

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

func TestUpdateAgentProfile(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	agent := auth.Principal{UserID: "a1", Role: auth.RoleAgent}

	setup := func() (*testutil.Applier, *Interactor) {
		users := accounttest.NewUsers(
			accounttest.Agent("a1", "a1@example.com", "LIC-1", domain.Rating{Average: 4.5, Count: 2}),
			accounttest.Agent("a2", "a2@example.com", "LIC-2", domain.Rating{}),
			accounttest.User("u1", "u1@example.com", ""),
		)
		applier := &testutil.Applier{}
		return applier, NewInteractor(users, applier, clk)
	}

	t.Run("partial update keeps rating", func(t *testing.T) {
		applier, uc := setup()
		u, err := uc.Execute(ctx, &Request{Caller: agent, Profile: domain.AgentProfileInput{
			Bio:             ptr("Residential specialist"),
			ExperienceYears: ptr(int64(7)),
			Specializations: &[]string{"Residential", "residential", "Luxury"},
		}})
		require.NoError(t, err)

		p := u.AgentProfile()
		assert.Equal(t, "Residential specialist", p.Bio)
		assert.Equal(t, int64(7), p.ExperienceYears)
		assert.Equal(t, []string{"residential", "luxury"}, p.Specializations)
		assert.Equal(t, "LIC-1", p.LicenseNumber)
		assert.InDelta(t, 4.5, p.Rating.Average, 1e-9)
		assert.Len(t, applier.Plans, 1)
	})

	t.Run("same license is allowed", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: agent, Profile: domain.AgentProfileInput{LicenseNumber: ptr("LIC-1")}})
		assert.NoError(t, err)
	})

	t.Run("license held by another agent", func(t *testing.T) {
		applier, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: agent, Profile: domain.AgentProfileInput{LicenseNumber: ptr("LIC-2")}})
		assert.ErrorIs(t, err, domain.ErrLicenseTaken)
		assert.Empty(t, applier.Plans)
	})

	t.Run("plain user", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: auth.Principal{UserID: "u1", Role: auth.RoleUser}, Profile: domain.AgentProfileInput{Bio: ptr("x")}})
		assert.ErrorIs(t, err, domain.ErrNotAgent)
	})

	t.Run("experience out of range", func(t *testing.T) {
		_, uc := setup()
		_, err := uc.Execute(ctx, &Request{Caller: agent, Profile: domain.AgentProfileInput{ExperienceYears: ptr(int64(81))}})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)
	})
}
