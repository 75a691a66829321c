package saleservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
)

var saoPaulo = time.FixedZone("BRT", -3*60*60)

// 02:00 UTC is still the previous day in São Paulo.
var fixedNow = time.Date(2026, 3, 11, 2, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProfileRepo, *MockSpendRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	spendRepo := NewMockSpendRepo(ctrl)

	service := New(repo, profileRepo, spendRepo, metrics.New(), saoPaulo)
	service.now = func() time.Time { return fixedNow }
	return service, repo, profileRepo, spendRepo
}

func TestDay(t *testing.T) {
	service, _, _, _ := NewMock(t)

	today, err := service.Day("")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo), today)

	day, err := service.Day("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, saoPaulo), day)

	_, err = service.Day("31/01/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestList(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, saoPaulo)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, saoPaulo)

	tests := []struct {
		name          string
		from, to      string
		status        string
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name: "Inclusive range",
			from: "2026-03-01", to: "2026-03-02", status: "Approved",
			prepareMock: func() {
				repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, from, to, "approved").
					Return([]domain.Sale{{ID: "s-1"}, {ID: "s-2"}}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "Defaults to today",
			prepareMock: func() {
				day := time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)
				repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, day.AddDate(0, 0, 1), "").Return(nil, nil)
			},
		},
		{
			name: "Unknown status", status: "lost",
			prepareMock:   func() {},
			expectedError: ErrInvalidStatus,
		},
		{
			name: "Reversed range", from: "2026-03-05", to: "2026-03-01",
			prepareMock:   func() {},
			expectedError: ErrInvalidRange,
		},
		{
			name: "Bad date", from: "yesterday",
			prepareMock:   func() {},
			expectedError: ErrInvalidDate,
		},
		{
			name: "Repository error", from: "2026-03-01", to: "2026-03-02",
			prepareMock: func() {
				repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, from, to, "").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			sales, err := service.List(context.Background(), 1, tt.from, tt.to, tt.status)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				return
			}
			require.NoError(t, err)
			assert.Len(t, sales, tt.expectedLen)
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	repo.EXPECT().Delete(gomock.Any(), 1, "s-1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1, "s-1"))

	repo.EXPECT().Delete(gomock.Any(), 1, "s-2").Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 1, "s-2"), ErrSaleNotFound)

	repo.EXPECT().Delete(gomock.Any(), 1, "s-3").Return(false, errors.New("database error"))
	assert.EqualError(t, service.Delete(context.Background(), 1, "s-3"), "database error")
}

func TestSummary(t *testing.T) {
	service, repo, profileRepo, spendRepo := NewMock(t)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)
	sales := []domain.Sale{
		{Status: "approved", Amount: 100, CustomerEmail: "a@example.com"},
		{Status: "paid", Amount: 50, CustomerEmail: "A@example.com "},
		{Status: "approved", Amount: 150, CustomerEmail: "b@example.com"},
		{Status: "refunded", Amount: 70},
		{Status: "pending", Amount: 10},
		{Status: "declined", Amount: 5},
	}

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, day.AddDate(0, 0, 1), "").Return(sales, nil)
	spendRepo.EXPECT().TotalByUser(gomock.Any(), 1, day, day).Return(100.0, nil)
	profileRepo.EXPECT().RaisePeakRevenue(gomock.Any(), 1, 300.0).Return(450.0, nil)

	summary, err := service.Summary(context.Background(), 1, "")
	require.NoError(t, err)

	assert.Equal(t, day, summary.Date)
	assert.Equal(t, 300.0, summary.Revenue)
	assert.Equal(t, 3, summary.Approved)
	assert.Equal(t, 1, summary.Pending)
	assert.Equal(t, 1, summary.Refunded)
	assert.Equal(t, 1, summary.Declined)
	assert.InDelta(t, 25.0, summary.RefundRate, 1e-9)
	assert.InDelta(t, 150.0, summary.ARPU, 1e-9)
	assert.Equal(t, 200.0, summary.Profit)
	assert.InDelta(t, 3.0, summary.ROAS, 1e-9)
	assert.InDelta(t, 200.0, summary.ROI, 1e-9)
	assert.Equal(t, 450.0, summary.PeakRevenue)
}

func TestSummary_Errors(t *testing.T) {
	service, repo, profileRepo, spendRepo := NewMock(t)
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, saoPaulo)

	_, err := service.Summary(context.Background(), 1, "bad")
	assert.ErrorIs(t, err, ErrInvalidDate)

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, gomock.Any(), "").Return(nil, errors.New("database error"))
	_, err = service.Summary(context.Background(), 1, "2026-03-09")
	assert.Error(t, err)

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, gomock.Any(), "").Return(nil, nil)
	spendRepo.EXPECT().TotalByUser(gomock.Any(), 1, day, day).Return(0.0, errors.New("database error"))
	_, err = service.Summary(context.Background(), 1, "2026-03-09")
	assert.Error(t, err)

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, gomock.Any(), "").Return(nil, nil)
	spendRepo.EXPECT().TotalByUser(gomock.Any(), 1, day, day).Return(0.0, nil)
	profileRepo.EXPECT().RaisePeakRevenue(gomock.Any(), 1, 0.0).Return(0.0, errors.New("database error"))
	_, err = service.Summary(context.Background(), 1, "2026-03-09")
	assert.Error(t, err)
}

func TestSummarize_ZeroBases(t *testing.T) {
	sum := Summarize(nil, 0)
	assert.Equal(t, Summary{}, sum)

	sum = Summarize([]domain.Sale{{Status: "approved", Amount: 40}}, 0)
	assert.Equal(t, 40.0, sum.Revenue)
	assert.Zero(t, sum.ARPU)
	assert.Zero(t, sum.ROAS)
	assert.Zero(t, sum.ROI)
	assert.Equal(t, 40.0, sum.Profit)
}

func TestAttribution(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, saoPaulo)

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, day.AddDate(0, 0, 1), "").Return([]domain.Sale{
		{Status: "approved", Amount: 10, RawData: json.RawMessage(`{"tracking":{"utm_campaign":"Summer|123"}}`)},
	}, nil)

	result, err := service.Attribution(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Campaigns["123"].Sales)
	assert.Empty(t, result.Ads)

	repo.EXPECT().FindByUserAndRange(gomock.Any(), 1, day, gomock.Any(), "").Return(nil, errors.New("database error"))
	_, err = service.Attribution(context.Background(), 1, "2026-03-10")
	assert.Error(t, err)
}
