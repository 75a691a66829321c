package profilerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
        SELECT user_id, full_name, plan, trial_ends_at, peak_revenue, created_at
        FROM profiles
        WHERE user_id = $1
    `
	return r.get(ctx, query, userID)
}

// LockByUserID reads the profile and holds its row lock until the
// surrounding transaction ends. Plan-limited inserts take it first so that
// concurrent creates for one user are serialized.
func (r *Repository) LockByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	query := `
        SELECT user_id, full_name, plan, trial_ends_at, peak_revenue, created_at
        FROM profiles
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.get(ctx, query, userID)
}

func (r *Repository) get(ctx context.Context, query string, userID int) (*domain.Profile, error) {
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&p.UserID, &p.FullName, &p.Plan, &p.TrialEndsAt, &p.PeakRevenue, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// RaisePeakRevenue stores revenue as the new peak only if it is higher and
// returns the resulting peak.
func (r *Repository) RaisePeakRevenue(ctx context.Context, userID int, revenue float64) (float64, error) {
	query := `
        UPDATE profiles
        SET peak_revenue = GREATEST(peak_revenue, $1)
        WHERE user_id = $2
        RETURNING peak_revenue
    `
	var peak float64
	if err := r.db.QueryRow(ctx, query, revenue, userID).Scan(&peak); err != nil {
		zap.L().Error("can't update peak revenue", zap.Error(err))
		return 0, err
	}
	return peak, nil
}
