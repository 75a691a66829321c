package visitorrepo

import (
	"context"
	"time"

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

func (r *Repository) Upsert(ctx context.Context, v *domain.LiveVisitor) error {
	query := `
        INSERT INTO live_visitors (session_id, user_id, page_url, country, region, city, last_seen_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (session_id) DO UPDATE
        SET user_id = EXCLUDED.user_id,
            page_url = EXCLUDED.page_url,
            country = COALESCE(NULLIF(EXCLUDED.country, ''), live_visitors.country),
            region = COALESCE(NULLIF(EXCLUDED.region, ''), live_visitors.region),
            city = COALESCE(NULLIF(EXCLUDED.city, ''), live_visitors.city),
            last_seen_at = EXCLUDED.last_seen_at
    `
	_, err := r.db.Exec(ctx, query, v.SessionID, v.UserID, v.PageURL, v.Country, v.Region, v.City, v.LastSeenAt)
	if err != nil {
		zap.L().Error("can't upsert live visitor", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM live_visitors WHERE session_id = $1`, sessionID)
	if err != nil {
		zap.L().Error("can't delete live visitor", zap.Error(err))
		return err
	}
	return nil
}

// DeleteStale removes sessions not seen since before.
func (r *Repository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM live_visitors WHERE last_seen_at < $1`, before)
	if err != nil {
		zap.L().Error("can't delete stale visitors", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListActive(ctx context.Context, userID int, since time.Time) ([]domain.LiveVisitor, error) {
	query := `
        SELECT session_id, user_id, page_url, country, region, city, last_seen_at
        FROM live_visitors
        WHERE user_id = $1 AND last_seen_at >= $2
        ORDER BY last_seen_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, since)
	if err != nil {
		zap.L().Error("can't get live visitors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var visitors []domain.LiveVisitor
	for rows.Next() {
		var v domain.LiveVisitor
		if err := rows.Scan(&v.SessionID, &v.UserID, &v.PageURL, &v.Country, &v.Region, &v.City, &v.LastSeenAt); err != nil {
			zap.L().Error("can't scan live visitor row", zap.Error(err))
			return nil, err
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
