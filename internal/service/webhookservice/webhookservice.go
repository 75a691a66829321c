package webhookservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
)

var (
	ErrWebhookNotFound = errors.New("webhook not found")
	ErrInvalidWebhook  = errors.New("platform and name are required")
	ErrInvalidStatus   = errors.New("status must be active or inactive")
)

type Repo interface {
	Create(ctx context.Context, w *domain.Webhook) error
	ListByUserID(ctx context.Context, userID int) ([]domain.Webhook, error)
	CountByUserID(ctx context.Context, userID int) (int, error)
	UpdateStatus(ctx context.Context, userID int, id, status string) (bool, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
}

type ProfileRepo interface {
	LockByUserID(ctx context.Context, userID int) (*domain.Profile, error)
}

type Service struct {
	repo        Repo
	profileRepo ProfileRepo
	txManager   pg.TXManager
	newID       func() string
	now         func() time.Time
}

func New(repo Repo, profileRepo ProfileRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		profileRepo: profileRepo,
		txManager:   txManager,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// Create registers an ingestion endpoint for a sales platform. The token is
// the secret the platform presents when posting sales.
func (s *Service) Create(ctx context.Context, userID int, platform, name string) (*domain.Webhook, error) {
	platform = strings.ToLower(strings.TrimSpace(platform))
	name = strings.TrimSpace(name)
	if platform == "" || name == "" {
		return nil, ErrInvalidWebhook
	}

	webhook := &domain.Webhook{
		ID:       s.newID(),
		UserID:   userID,
		Platform: platform,
		Name:     name,
		Token:    strings.ReplaceAll(s.newID(), "-", ""),
		Status:   domain.StatusActive,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profileRepo.LockByUserID(ctx, userID)
		if err != nil {
			return err
		}
		count, err := s.repo.CountByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if err := plans.Gate(profile, plans.Webhooks, count, s.now()); err != nil {
			zap.L().Info("webhook creation blocked", zap.Int("userID", userID), zap.Error(err))
			return err
		}
		if err := s.repo.Create(ctx, webhook); err != nil {
			zap.L().Error("can't create webhook", zap.Int("userID", userID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("webhook created", zap.Int("userID", userID), zap.String("webhookID", webhook.ID))
	return webhook, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Webhook, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) SetStatus(ctx context.Context, userID int, id, status string) error {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return ErrInvalidStatus
	}
	updated, err := s.repo.UpdateStatus(ctx, userID, id, status)
	if err != nil {
		return err
	}
	if !updated {
		return ErrWebhookNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWebhookNotFound
	}
	zap.L().Info("webhook deleted", zap.Int("userID", userID), zap.String("webhookID", id))
	return nil
}
