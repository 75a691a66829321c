// Package insights periodically pulls ad spend for connected ad accounts.
package insights

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/meta"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
)

const (
	maxRetries    = 3
	retryInterval = time.Second
	batchLimit    = 500
	poolSize      = 10
)

type CredentialRepo interface {
	FindActiveByPlatform(ctx context.Context, platform string, limit uint32) ([]domain.APICredential, error)
}

type SpendRepo interface {
	Upsert(ctx context.Context, s *domain.AdSpend) error
}

type SpendClient interface {
	AccountSpend(ctx context.Context, accessToken, accountID string, day time.Time) (float64, error)
}

type Service struct {
	credentials    CredentialRepo
	spend          SpendRepo
	client         SpendClient
	metrics        *metrics.Metrics
	workerPool     WorkerPoolI
	newPool        func() WorkerPoolI
	limit          uint32
	updateInterval time.Duration
	loc            *time.Location

	inFlight sync.Map
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

func New(credentials CredentialRepo, spend SpendRepo, client SpendClient, m *metrics.Metrics, interval time.Duration, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		credentials:    credentials,
		spend:          spend,
		client:         client,
		metrics:        m,
		newPool:        func() WorkerPoolI { return NewWorkerPool(poolSize) },
		limit:          batchLimit,
		updateInterval: interval,
		loc:            loc,
		now:            time.Now,
		sleep:          sleepCtx,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.updateInterval <= 0 {
		zap.L().Info("spend sync disabled")
		return
	}
	s.workerPool = s.newPool()
	zap.L().Info("spend sync started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping spend sync")
			return
		case <-ticker.C:
			s.syncAccounts(ctx)
		}
	}
}

func (s *Service) syncAccounts(ctx context.Context) {
	credentials, err := s.credentials.FindActiveByPlatform(ctx, domain.PlatformMeta, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch credentials for spend sync", zap.Error(err))
		return
	}

	y, m, d := s.now().In(s.loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.loc)

	var g errgroup.Group
	for _, credential := range credentials {
		credential := credential
		key := fmt.Sprintf("%d:%s", credential.UserID, credential.AccountID)

		if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(key)
				return s.syncAccount(ctx, credential, day)
			})
			if err != nil {
				s.inFlight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error queueing spend sync", zap.Error(err))
	}
}

func (s *Service) syncAccount(ctx context.Context, credential domain.APICredential, day time.Time) error {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		spend, err := s.client.AccountSpend(ctx, credential.AccessToken, credential.AccountID, day)
		if err == nil {
			return s.store(ctx, credential, day, spend)
		}
		lastErr = err

		var rateLimit *meta.RateLimitError
		var graphErr *meta.GraphError
		wait := retryInterval * time.Duration(attempt)
		switch {
		case errors.As(err, &rateLimit):
			s.metrics.SpendSync.WithLabelValues(metrics.OutcomeRateLimited).Inc()
			wait = rateLimit.RetryAfter
			zap.L().Warn("rate limit detected, retrying",
				zap.String("accountID", credential.AccountID),
				zap.Int("attempt", attempt),
				zap.Duration("retryAfter", wait),
			)
		case errors.As(err, &graphErr):
			s.metrics.SpendSync.WithLabelValues(metrics.OutcomeFailed).Inc()
			return fmt.Errorf("spend for account %s rejected: %w", credential.AccountID, err)
		}

		if attempt == maxRetries {
			break
		}
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
	}

	s.metrics.SpendSync.WithLabelValues(metrics.OutcomeFailed).Inc()
	return fmt.Errorf("failed to sync account %s after %d retries: %w", credential.AccountID, maxRetries, lastErr)
}

func (s *Service) store(ctx context.Context, credential domain.APICredential, day time.Time, spend float64) error {
	err := s.spend.Upsert(ctx, &domain.AdSpend{
		UserID:    credential.UserID,
		AccountID: credential.AccountID,
		Date:      day,
		Spend:     spend,
		UpdatedAt: s.now(),
	})
	if err != nil {
		s.metrics.SpendSync.WithLabelValues(metrics.OutcomeFailed).Inc()
		return fmt.Errorf("failed to store spend for account %s: %w", credential.AccountID, err)
	}
	s.metrics.SpendSync.WithLabelValues(metrics.OutcomeSuccess).Inc()
	zap.L().Debug("ad spend synced", zap.Int("userID", credential.UserID), zap.String("accountID", credential.AccountID), zap.Float64("spend", spend))
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
