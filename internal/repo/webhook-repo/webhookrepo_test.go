package webhookrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO webhooks (id, user_id, platform, name, token, status)")

	mock.ExpectQuery(query).
		WithArgs("w-1", 1, "kiwify", "Store", "tok", "active").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	w := &domain.Webhook{ID: "w-1", UserID: 1, Platform: "kiwify", Name: "Store", Token: "tok", Status: "active"}
	require.NoError(t, repo.Create(context.Background(), w))
	assert.Equal(t, now, w.CreatedAt)

	mock.ExpectQuery(query).
		WithArgs("w-2", 1, "kiwify", "Store", "tok", "active").
		WillReturnError(errors.New("database error"))
	assert.Error(t, repo.Create(context.Background(), &domain.Webhook{ID: "w-2", UserID: 1, Platform: "kiwify", Name: "Store", Token: "tok", Status: "active"}))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM webhooks")

	rows := pgxmock.NewRows([]string{"id", "user_id", "platform", "name", "token", "status", "created_at"}).
		AddRow("w-1", 1, "kiwify", "Store", "tok", "active", now)
	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)

	hooks, err := repo.ListByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.Webhook{{ID: "w-1", UserID: 1, Platform: "kiwify", Name: "Store", Token: "tok", Status: "active", CreatedAt: now}}, hooks)

	mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
	_, err = repo.ListByUserID(context.Background(), 1)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT COUNT(*) FROM webhooks WHERE user_id = $1")

	mock.ExpectQuery(query).WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	n, err := repo.CountByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
	_, err = repo.CountByUserID(context.Background(), 1)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatusAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		call      func() (bool, error)
		ok        bool
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE webhooks SET status = $1")).
					WithArgs("inactive", "w-1", 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			call: func() (bool, error) { return repo.UpdateStatus(context.Background(), 1, "w-1", "inactive") },
			ok:   true,
		},
		{
			name: "Status on missing webhook",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE webhooks SET status = $1")).
					WithArgs("inactive", "w-9", 1).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			call: func() (bool, error) { return repo.UpdateStatus(context.Background(), 1, "w-9", "inactive") },
		},
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM webhooks")).
					WithArgs("w-1", 1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			call: func() (bool, error) { return repo.Delete(context.Background(), 1, "w-1") },
			ok:   true,
		},
		{
			name: "Delete error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM webhooks")).
					WithArgs("w-1", 1).WillReturnError(errors.New("database error"))
			},
			call:      func() (bool, error) { return repo.Delete(context.Background(), 1, "w-1") },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := tt.call()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.ok, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
