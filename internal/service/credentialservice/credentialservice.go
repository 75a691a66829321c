package credentialservice

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
	ErrCredentialNotFound = errors.New("credential not found")
	ErrInvalidCredential  = errors.New("platform, name and access token are required")
	ErrInvalidStatus      = errors.New("status must be active or inactive")
)

type Repo interface {
	Create(ctx context.Context, c *domain.APICredential) error
	GetByID(ctx context.Context, userID int, id string) (*domain.APICredential, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.APICredential, error)
	CountByUserID(ctx context.Context, userID int) (int, error)
	UpdateStatus(ctx context.Context, userID int, id, status string) (bool, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
}

type ProfileRepo interface {
	LockByUserID(ctx context.Context, userID int) (*domain.Profile, error)
}

type CreateInput struct {
	Platform    string
	Name        string
	AccessToken string
	AccountID   string
	ExpiresAt   *time.Time
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

// Create stores an ad account connection. Each credential counts against
// the plan's ad account limit.
func (s *Service) Create(ctx context.Context, userID int, in CreateInput) (*domain.APICredential, error) {
	in.Platform = strings.ToLower(strings.TrimSpace(in.Platform))
	in.Name = strings.TrimSpace(in.Name)
	in.AccessToken = strings.TrimSpace(in.AccessToken)
	if in.Platform == "" || in.Name == "" || in.AccessToken == "" {
		return nil, ErrInvalidCredential
	}

	credential := &domain.APICredential{
		ID:          s.newID(),
		UserID:      userID,
		Platform:    in.Platform,
		Name:        in.Name,
		AccessToken: in.AccessToken,
		AccountID:   strings.TrimSpace(in.AccountID),
		ExpiresAt:   in.ExpiresAt,
		Status:      domain.StatusActive,
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
		if err := plans.Gate(profile, plans.AdAccounts, count, s.now()); err != nil {
			zap.L().Info("credential creation blocked", zap.Int("userID", userID), zap.Error(err))
			return err
		}
		if err := s.repo.Create(ctx, credential); err != nil {
			zap.L().Error("can't create credential", zap.Int("userID", userID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("credential created", zap.Int("userID", userID), zap.String("platform", credential.Platform))
	return credential, nil
}

func (s *Service) Get(ctx context.Context, userID int, id string) (*domain.APICredential, error) {
	credential, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if credential == nil {
		return nil, ErrCredentialNotFound
	}
	return credential, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.APICredential, error) {
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
		return ErrCredentialNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCredentialNotFound
	}
	zap.L().Info("credential deleted", zap.Int("userID", userID), zap.String("credentialID", id))
	return nil
}
