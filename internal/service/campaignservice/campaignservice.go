package campaignservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/pkg/validate"
)

var (
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrCredentialInactive  = errors.New("credential is inactive")
	ErrUnsupportedPlatform = errors.New("platform does not support budget changes")
	ErrMissingCampaign     = errors.New("campaign id is required")
)

type CredentialRepo interface {
	GetByID(ctx context.Context, userID int, id string) (*domain.APICredential, error)
}

type BudgetClient interface {
	UpdateDailyBudget(ctx context.Context, accessToken, campaignID string, cents int64) error
}

type Service struct {
	credentials CredentialRepo
	client      BudgetClient
}

func New(credentials CredentialRepo, client BudgetClient) *Service {
	return &Service{
		credentials: credentials,
		client:      client,
	}
}

// UpdateDailyBudget validates budget before touching storage or the ad
// platform and returns the amount sent, in cents.
func (s *Service) UpdateDailyBudget(ctx context.Context, userID int, campaignID, credentialID, budget string) (int64, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return 0, ErrMissingCampaign
	}
	cents, err := validate.ParseBudgetCents(budget)
	if err != nil {
		return 0, err
	}

	credential, err := s.credentials.GetByID(ctx, userID, credentialID)
	if err != nil {
		return 0, err
	}
	switch {
	case credential == nil:
		return 0, ErrCredentialNotFound
	case credential.Status != domain.StatusActive:
		return 0, ErrCredentialInactive
	case credential.Platform != domain.PlatformMeta:
		return 0, ErrUnsupportedPlatform
	}

	if err := s.client.UpdateDailyBudget(ctx, credential.AccessToken, campaignID, cents); err != nil {
		zap.L().Error("can't update campaign budget", zap.String("campaignID", campaignID), zap.Error(err))
		return 0, err
	}
	zap.L().Info("campaign budget updated", zap.Int("userID", userID), zap.String("campaignID", campaignID), zap.Int64("cents", cents))
	return cents, nil
}
