package plans

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
)

func TestCheckAccess(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		profile     *domain.Profile
		expectedErr error
	}{
		{name: "Trial running", profile: &domain.Profile{Plan: Trial, TrialEndsAt: now.Add(time.Hour)}},
		{name: "Trial ends now", profile: &domain.Profile{Plan: Trial, TrialEndsAt: now}, expectedErr: ErrTrialExpired},
		{name: "Trial over", profile: &domain.Profile{Plan: Trial, TrialEndsAt: now.Add(-time.Hour)}, expectedErr: ErrTrialExpired},
		{name: "Paid plan ignores trial date", profile: &domain.Profile{Plan: Pro, TrialEndsAt: now.Add(-time.Hour)}},
		{name: "Unknown plan", profile: &domain.Profile{Plan: "gold"}, expectedErr: ErrUnknownPlan},
		{name: "No profile", profile: nil, expectedErr: ErrUnknownPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAccess(tt.profile, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckLimit(t *testing.T) {
	tests := []struct {
		name        string
		plan        string
		resource    Resource
		current     int
		expectedErr error
	}{
		{name: "Trial first webhook", plan: Trial, resource: Webhooks, current: 0},
		{name: "Trial second webhook", plan: Trial, resource: Webhooks, current: 1, expectedErr: ErrLimitReached},
		{name: "Starter second ad account", plan: Starter, resource: AdAccounts, current: 1},
		{name: "Starter third ad account", plan: Starter, resource: AdAccounts, current: 2, expectedErr: ErrLimitReached},
		{name: "Pro below cap", plan: Pro, resource: Webhooks, current: 9},
		{name: "Scale unlimited", plan: Scale, resource: AdAccounts, current: 1000},
		{name: "Unknown plan", plan: "gold", resource: Webhooks, expectedErr: ErrUnknownPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLimit(tt.plan, tt.resource, tt.current)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrialDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, TrialDaysLeft(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(7 * 24 * time.Hour)}, now))
	assert.Equal(t, 1, TrialDaysLeft(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(time.Minute)}, now))
	assert.Equal(t, 0, TrialDaysLeft(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(-time.Minute)}, now))
	assert.Equal(t, 0, TrialDaysLeft(&domain.Profile{Plan: Pro, TrialEndsAt: now.Add(time.Hour)}, now))
	assert.Equal(t, 0, TrialDaysLeft(nil, now))
}

func TestLimitsFor(t *testing.T) {
	l, err := LimitsFor(Scale)
	assert.NoError(t, err)
	assert.Equal(t, Unlimited, l.Webhooks)

	_, err = LimitsFor("")
	assert.ErrorIs(t, err, ErrUnknownPlan)
}

func TestGate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, Gate(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(time.Hour)}, Webhooks, 0, now))
	assert.ErrorIs(t, Gate(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(-time.Hour)}, Webhooks, 0, now), ErrTrialExpired)
	assert.ErrorIs(t, Gate(&domain.Profile{Plan: Trial, TrialEndsAt: now.Add(time.Hour)}, AdAccounts, 1, now), ErrLimitReached)
	assert.ErrorIs(t, Gate(nil, AdAccounts, 0, now), ErrUnknownPlan)
}
