package profileservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
}

// Overview is the profile together with what its plan allows right now.
type Overview struct {
	Profile       domain.Profile
	Limits        plans.Limits
	TrialDaysLeft int
	Active        bool
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) GetOverview(ctx context.Context, userID int) (*Overview, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		zap.L().Warn("profile missing for user", zap.Int("userID", userID))
		return nil, ErrProfileNotFound
	}

	limits, err := plans.LimitsFor(profile.Plan)
	if err != nil {
		zap.L().Error("profile has unknown plan", zap.Int("userID", userID), zap.String("plan", profile.Plan))
		return nil, err
	}

	now := s.now()
	return &Overview{
		Profile:       *profile,
		Limits:        limits,
		TrialDaysLeft: plans.TrialDaysLeft(profile, now),
		Active:        plans.CheckAccess(profile, now) == nil,
	}, nil
}
