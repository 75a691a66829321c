package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()
	query := regexp.QuoteMeta("SELECT id, login, password_hash, created_at FROM users WHERE login = $1")

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "ana@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).
					AddRow(1, "ana@example.com", "hashed_password", createdAt)
				mock.ExpectQuery(query).WithArgs("ana@example.com").WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "ana@example.com", PasswordHash: "hashed_password", CreatedAt: createdAt},
		},
		{
			name:  "User not found",
			login: "ghost@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ghost@example.com").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			login: "ana@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ana@example.com").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
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

func TestRepository_CreateWithProfile(t *testing.T) {
	repo, mock, tx := NewMock(t)
	createdAt := time.Now()
	trialEnds := createdAt.Add(7 * 24 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "User and profile saved",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
						WithArgs("ana@example.com", "hash").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles (user_id, full_name, plan, trial_ends_at)")).
						WithArgs(7, "Ana", "trial", trialEnds).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Login already taken",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
						WithArgs("ana@example.com", "hash").
						WillReturnError(errors.New("duplicate key value"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Profile insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login, password_hash)")).
						WithArgs("ana@example.com", "hash").
						WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles")).
						WithArgs(7, "Ana", "trial", trialEnds).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{Login: "ana@example.com", PasswordHash: "hash"}
			profile := &domain.Profile{FullName: "Ana", Plan: "trial", TrialEndsAt: trialEnds}

			result, err := repo.CreateWithProfile(context.Background(), user, profile)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
				assert.Equal(t, 7, profile.UserID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
