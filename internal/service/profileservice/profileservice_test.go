package profileservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	service.now = func() time.Time { return fixedNow }
	return service, repo
}

func TestGetOverview(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *Overview
		expectedError error
	}{
		{
			name: "Running trial",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(36 * time.Hour)}, nil)
			},
			expected: &Overview{
				Profile:       domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(36 * time.Hour)},
				Limits:        plans.Limits{Webhooks: 1, AdAccounts: 1},
				TrialDaysLeft: 2,
				Active:        true,
			},
		},
		{
			name: "Expired trial",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(-time.Hour)}, nil)
			},
			expected: &Overview{
				Profile: domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(-time.Hour)},
				Limits:  plans.Limits{Webhooks: 1, AdAccounts: 1},
			},
		},
		{
			name: "Missing profile",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrProfileNotFound,
		},
		{
			name: "Unknown plan",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Profile{UserID: 1, Plan: "gold"}, nil)
			},
			expectedError: plans.ErrUnknownPlan,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().GetByUserID(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			overview, err := service.GetOverview(context.Background(), 1)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, overview)
		})
	}
}
