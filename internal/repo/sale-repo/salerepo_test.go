package salerepo

import (
	"context"
	"encoding/json"
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

func TestRepository_FindByUserAndRange(t *testing.T) {
	repo, mock := NewMock(t)
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	query := regexp.QuoteMeta("FROM sales")
	columns := []string{"id", "user_id", "amount", "status", "customer_email", "raw_data", "created_at"}

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
		result    []domain.Sale
	}{
		{
			name: "Sales found",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("s-2", 1, 99.9, "approved", "b@example.com", []byte(`{"utm_campaign":"A|1"}`), from.Add(2*time.Hour)).
					AddRow("s-1", 1, 10.0, "refunded", "a@example.com", []byte(`{}`), from.Add(time.Hour))
				mock.ExpectQuery(query).WithArgs(1, from, to, "").WillReturnRows(rows)
			},
			result: []domain.Sale{
				{ID: "s-2", UserID: 1, Amount: 99.9, Status: "approved", CustomerEmail: "b@example.com", RawData: json.RawMessage(`{"utm_campaign":"A|1"}`), CreatedAt: from.Add(2 * time.Hour)},
				{ID: "s-1", UserID: 1, Amount: 10.0, Status: "refunded", CustomerEmail: "a@example.com", RawData: json.RawMessage(`{}`), CreatedAt: from.Add(time.Hour)},
			},
		},
		{
			name:   "Status filter ignores stored case",
			status: "approved",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("s-3", 1, 50.0, "APPROVED ", "c@example.com", []byte(`{}`), from.Add(time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("lower(btrim(status)) = $4::text")).WithArgs(1, from, to, "approved").WillReturnRows(rows)
			},
			result: []domain.Sale{
				{ID: "s-3", UserID: 1, Amount: 50.0, Status: "APPROVED ", CustomerEmail: "c@example.com", RawData: json.RawMessage(`{}`), CreatedAt: from.Add(time.Hour)},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, from, to, "").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserAndRange(context.Background(), 1, from, to, tt.status)
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

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("DELETE FROM sales WHERE id = $1 AND user_id = $2")

	tests := []struct {
		name      string
		mockSetup func()
		deleted   bool
		expectErr bool
	}{
		{
			name: "Deleted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("s-1", 1).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			deleted: true,
		},
		{
			name: "Foreign or missing sale",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("s-1", 1).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("s-1", 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), 1, "s-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
