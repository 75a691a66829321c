package credentialrepo

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

var credentialColumns = []string{"id", "user_id", "platform", "name", "access_token", "account_id", "expires_at", "status", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	expires := now.Add(60 * 24 * time.Hour)
	c := &domain.APICredential{
		ID: "c-1", UserID: 1, Platform: "meta", Name: "Main", AccessToken: "long",
		AccountID: "act_1", ExpiresAt: &expires, Status: "active",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO api_credentials")).
		WithArgs("c-1", 1, "meta", "Main", "long", "act_1", &expires, "active").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, now, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM api_credentials WHERE id = $1 AND user_id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.APICredential
	}{
		{
			name: "Found",
			mockSetup: func() {
				rows := pgxmock.NewRows(credentialColumns).
					AddRow("c-1", 1, "meta", "Main", "long", "act_1", &now, "active", now)
				mock.ExpectQuery(query).WithArgs("c-1", 1).WillReturnRows(rows)
			},
			result: &domain.APICredential{
				ID: "c-1", UserID: 1, Platform: "meta", Name: "Main", AccessToken: "long",
				AccountID: "act_1", ExpiresAt: &now, Status: "active", CreatedAt: now,
			},
		},
		{
			name: "Not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("c-1", 1).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("c-1", 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 1, "c-1")
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

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM api_credentials WHERE user_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(credentialColumns).AddRow("c-1", 1, "meta", "Main", "long", "act_1", &now, "active", now))
	list, err := repo.ListByUserID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "act_1", list[0].AccountID)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE platform = $1 AND status = 'active'")).
		WithArgs("meta", 50).
		WillReturnRows(pgxmock.NewRows(credentialColumns).
			AddRow("c-1", 1, "meta", "Main", "long", "act_1", &now, "active", now).
			AddRow("c-2", 2, "meta", "Other", "long2", "act_2", &now, "active", now))
	active, err := repo.FindActiveByPlatform(context.Background(), "meta", 50)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE platform = $1")).
		WithArgs("meta", 50).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindActiveByPlatform(context.Background(), "meta", 50)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountUpdateDelete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM api_credentials")).
		WithArgs(1).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	n, err := repo.CountByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE api_credentials SET status = $1")).
		WithArgs("inactive", "c-1", 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	updated, err := repo.UpdateStatus(context.Background(), 1, "c-1", "inactive")
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM api_credentials")).
		WithArgs("c-1", 1).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	deleted, err := repo.Delete(context.Background(), 1, "c-1")
	assert.NoError(t, err)
	assert.False(t, deleted)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM api_credentials")).
		WithArgs("c-1", 1).WillReturnError(errors.New("database error"))
	_, err = repo.Delete(context.Background(), 1, "c-1")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
