package salerepo

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

// FindByUserAndRange returns sales with from <= created_at < to, newest
// first. An empty status matches every status.
func (r *Repository) FindByUserAndRange(ctx context.Context, userID int, from, to time.Time, status string) ([]domain.Sale, error) {
	query := `
        SELECT id, user_id, amount, status, customer_email, raw_data, created_at
        FROM sales
        WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 AND ($4::text = '' OR lower(btrim(status)) = $4::text)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, from, to, status)
	if err != nil {
		zap.L().Error("can't get sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		err := rows.Scan(&s.ID, &s.UserID, &s.Amount, &s.Status, &s.CustomerEmail, &s.RawData, &s.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan sale row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate sales", zap.Error(err))
		return nil, err
	}
	return sales, nil
}

// Delete removes a sale owned by userID and reports whether it existed.
func (r *Repository) Delete(ctx context.Context, userID int, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sales WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		zap.L().Error("can't delete sale", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
