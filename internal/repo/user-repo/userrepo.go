package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, created_at FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// CreateWithProfile stores the user and its profile in one transaction.
func (repo *Repository) CreateWithProfile(ctx context.Context, user *domain.User, profile *domain.Profile) (*domain.User, error) {
	userQuery := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	profileQuery := `
		INSERT INTO profiles (user_id, full_name, plan, trial_ends_at)
		VALUES ($1, $2, $3, $4)
	`
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		err := repo.db.QueryRow(ctx, userQuery, user.Login, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't save user", zap.Error(err))
			return err
		}
		profile.UserID = user.ID
		_, err = repo.db.Exec(ctx, profileQuery, profile.UserID, profile.FullName, profile.Plan, profile.TrialEndsAt)
		if err != nil {
			zap.L().Error("can't save profile", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
