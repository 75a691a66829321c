package spendrepo

import (
	"context"
	"time"

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

func (r *Repository) Upsert(ctx context.Context, s *domain.AdSpend) error {
	query := `
        INSERT INTO ad_spend (user_id, account_id, date, spend, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, account_id, date) DO UPDATE
        SET spend = EXCLUDED.spend, updated_at = EXCLUDED.updated_at
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, s.UserID, s.AccountID, s.Date, s.Spend, s.UpdatedAt)
		if err != nil {
			zap.L().Error("can't upsert ad spend", zap.Error(err))
			return err
		}
		return nil
	})
}

// TotalByUser sums spend over from <= date <= to.
func (r *Repository) TotalByUser(ctx context.Context, userID int, from, to time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(spend), 0)::float8
        FROM ad_spend
        WHERE user_id = $1 AND date >= $2 AND date <= $3
    `
	var total float64
	if err := r.db.QueryRow(ctx, query, userID, from, to).Scan(&total); err != nil {
		zap.L().Error("can't sum ad spend", zap.Error(err))
		return 0, err
	}
	return total, nil
}
