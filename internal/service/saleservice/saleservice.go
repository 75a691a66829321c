package saleservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/attribution"
	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
)

var (
	ErrSaleNotFound  = errors.New("sale not found")
	ErrInvalidDate   = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidRange  = errors.New("from must not be after to")
	ErrInvalidStatus = errors.New("unknown sale status")
)

type Repo interface {
	FindByUserAndRange(ctx context.Context, userID int, from, to time.Time, status string) ([]domain.Sale, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
}

type ProfileRepo interface {
	RaisePeakRevenue(ctx context.Context, userID int, revenue float64) (float64, error)
}

type SpendRepo interface {
	TotalByUser(ctx context.Context, userID int, from, to time.Time) (float64, error)
}

type Service struct {
	repo        Repo
	profileRepo ProfileRepo
	spendRepo   SpendRepo
	metrics     *metrics.Metrics
	loc         *time.Location
	now         func() time.Time
}

func New(repo Repo, profileRepo ProfileRepo, spendRepo SpendRepo, m *metrics.Metrics, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:        repo,
		profileRepo: profileRepo,
		spendRepo:   spendRepo,
		metrics:     m,
		loc:         loc,
		now:         time.Now,
	}
}

var knownStatuses = map[string]struct{}{
	domain.SaleStatusPending:     {},
	domain.SaleStatusApproved:    {},
	domain.SaleStatusPaid:        {},
	domain.SaleStatusRefunded:    {},
	domain.SaleStatusChargedback: {},
	domain.SaleStatusCancelled:   {},
	domain.SaleStatusDeclined:    {},
}

// Day resolves a YYYY-MM-DD date in the dashboard time zone. An empty date
// is today.
func (s *Service) Day(date string) (time.Time, error) {
	if date == "" {
		y, m, d := s.now().In(s.loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, s.loc), nil
	}
	day, err := time.ParseInLocation(time.DateOnly, date, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}

// List returns sales created between the from and to days, both inclusive.
func (s *Service) List(ctx context.Context, userID int, from, to, status string) ([]domain.Sale, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" {
		if _, ok := knownStatuses[status]; !ok {
			return nil, ErrInvalidStatus
		}
	}
	start, err := s.Day(from)
	if err != nil {
		return nil, err
	}
	end, err := s.Day(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	sales, err := s.repo.FindByUserAndRange(ctx, userID, start, end.AddDate(0, 0, 1), status)
	if err != nil {
		zap.L().Error("can't list sales", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return sales, nil
}

func (s *Service) Delete(ctx context.Context, userID int, id string) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		zap.L().Error("can't delete sale", zap.String("saleID", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrSaleNotFound
	}
	zap.L().Info("sale deleted", zap.Int("userID", userID), zap.String("saleID", id))
	return nil
}

// Summary computes the day's dashboard figures and raises the stored peak
// revenue when the day beats it.
func (s *Service) Summary(ctx context.Context, userID int, date string) (*Summary, error) {
	day, err := s.Day(date)
	if err != nil {
		return nil, err
	}
	next := day.AddDate(0, 0, 1)

	sales, err := s.repo.FindByUserAndRange(ctx, userID, day, next, "")
	if err != nil {
		zap.L().Error("can't load sales for summary", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	spend, err := s.spendRepo.TotalByUser(ctx, userID, day, day)
	if err != nil {
		zap.L().Error("can't load ad spend for summary", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	summary := Summarize(sales, spend)
	summary.Date = day

	peak, err := s.profileRepo.RaisePeakRevenue(ctx, userID, summary.Revenue)
	if err != nil {
		zap.L().Error("can't update peak revenue", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	summary.PeakRevenue = peak
	return &summary, nil
}

// Attribution aggregates the day's sales per campaign, ad set and ad.
func (s *Service) Attribution(ctx context.Context, userID int, date string) (*attribution.Result, error) {
	day, err := s.Day(date)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.FindByUserAndRange(ctx, userID, day, day.AddDate(0, 0, 1), "")
	if err != nil {
		zap.L().Error("can't load sales for attribution", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	result := attribution.Aggregate(sales)
	s.metrics.AttributionRuns.Inc()
	return &result, nil
}
