package credentialrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
)

const columns = `id, user_id, platform, name, access_token, account_id, expires_at, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner, c *domain.APICredential) error {
	return row.Scan(&c.ID, &c.UserID, &c.Platform, &c.Name, &c.AccessToken, &c.AccountID, &c.ExpiresAt, &c.Status, &c.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, c *domain.APICredential) error {
	query := `
        INSERT INTO api_credentials (id, user_id, platform, name, access_token, account_id, expires_at, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Platform, c.Name, c.AccessToken, c.AccountID, c.ExpiresAt, c.Status).
		Scan(&c.CreatedAt)
	if err != nil {
		zap.L().Error("can't save credential", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, userID int, id string) (*domain.APICredential, error) {
	query := `SELECT ` + columns + ` FROM api_credentials WHERE id = $1 AND user_id = $2`

	var c domain.APICredential
	if err := scanCredential(r.db.QueryRow(ctx, query, id, userID), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get credential", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.APICredential, error) {
	query := `SELECT ` + columns + ` FROM api_credentials WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// FindActiveByPlatform feeds the spend sync; oldest credentials first.
func (r *Repository) FindActiveByPlatform(ctx context.Context, platform string, limit uint32) ([]domain.APICredential, error) {
	query := `SELECT ` + columns + ` FROM api_credentials
        WHERE platform = $1 AND status = 'active' AND account_id <> ''
        ORDER BY created_at ASC
        LIMIT $2`
	return r.list(ctx, query, platform, int(limit))
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.APICredential, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get credentials", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.APICredential
	for rows.Next() {
		var c domain.APICredential
		if err := scanCredential(rows, &c); err != nil {
			zap.L().Error("can't scan credential row", zap.Error(err))
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) CountByUserID(ctx context.Context, userID int) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM api_credentials WHERE user_id = $1`, userID).Scan(&n); err != nil {
		zap.L().Error("can't count credentials", zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, userID int, id, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE api_credentials SET status = $1 WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		zap.L().Error("can't update credential status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, userID int, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM api_credentials WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		zap.L().Error("can't delete credential", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
