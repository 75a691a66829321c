package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM profiles")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Profile found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "full_name", "plan", "trial_ends_at", "peak_revenue", "created_at"}).
					AddRow(1, "Ana", "trial", now, 1500.5, now)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.Profile{UserID: 1, FullName: "Ana", Plan: "trial", TrialEndsAt: now, PeakRevenue: 1500.5, CreatedAt: now},
		},
		{
			name: "Profile missing",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_RaisePeakRevenue(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SET peak_revenue = GREATEST(peak_revenue, $1)")

	mock.ExpectQuery(query).WithArgs(800.0, 1).
		WillReturnRows(pgxmock.NewRows([]string{"peak_revenue"}).AddRow(1200.0))
	peak, err := repo.RaisePeakRevenue(context.Background(), 1, 800)
	assert.NoError(t, err)
	assert.Equal(t, 1200.0, peak)

	mock.ExpectQuery(query).WithArgs(800.0, 1).WillReturnError(errors.New("database error"))
	_, err = repo.RaisePeakRevenue(context.Background(), 1, 800)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{"user_id", "full_name", "plan", "trial_ends_at", "peak_revenue", "created_at"}).
		AddRow(1, "Ana", "trial", now, 0.0, now)
	mock.ExpectQuery(`FROM profiles\s+WHERE user_id = \$1\s+FOR UPDATE`).WithArgs(1).WillReturnRows(rows)

	result, err := repo.LockByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.Profile{UserID: 1, FullName: "Ana", Plan: "trial", TrialEndsAt: now, CreatedAt: now}, result)

	mock.ExpectQuery(`FOR UPDATE`).WithArgs(2).WillReturnError(pgx.ErrNoRows)
	result, err = repo.LockByUserID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Nil(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}
