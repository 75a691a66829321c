package webhookrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, w *domain.Webhook) error {
	query := `
        INSERT INTO webhooks (id, user_id, platform, name, token, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, w.ID, w.UserID, w.Platform, w.Name, w.Token, w.Status).Scan(&w.CreatedAt)
	if err != nil {
		zap.L().Error("can't save webhook", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Webhook, error) {
	query := `
        SELECT id, user_id, platform, name, token, status, created_at
        FROM webhooks
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get webhooks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var webhooks []domain.Webhook
	for rows.Next() {
		var w domain.Webhook
		if err := rows.Scan(&w.ID, &w.UserID, &w.Platform, &w.Name, &w.Token, &w.Status, &w.CreatedAt); err != nil {
			zap.L().Error("can't scan webhook row", zap.Error(err))
			return nil, err
		}
		webhooks = append(webhooks, w)
	}
	return webhooks, rows.Err()
}

func (r *Repository) CountByUserID(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM webhooks WHERE user_id = $1`, userID).Scan(&n); err != nil {
		zap.L().Error("can't count webhooks", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, userID int, id, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE webhooks SET status = $1 WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		zap.L().Error("can't update webhook status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, userID int, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM webhooks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		zap.L().Error("can't delete webhook", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
