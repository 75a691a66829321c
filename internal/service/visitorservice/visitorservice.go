package visitorservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
	"github.com/GlebRadaev/gerenciaroi/pkg/geo"
)

// LiveWindow is how long a session counts as live after its last beacon.
const LiveWindow = 60 * time.Second

// GeoTimeout bounds the location lookup on the beacon path.
const GeoTimeout = 2 * time.Second

const (
	ActionPageview  = "pageview"
	ActionHeartbeat = "heartbeat"
	ActionLeave     = "leave"
)

var ErrInvalidBeacon = errors.New("user_id and session_id are required")

type Repo interface {
	Upsert(ctx context.Context, v *domain.LiveVisitor) error
	DeleteBySession(ctx context.Context, sessionID string) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
	ListActive(ctx context.Context, userID int, since time.Time) ([]domain.LiveVisitor, error)
}

type Locator interface {
	Lookup(ctx context.Context, ip string) (geo.Location, error)
}

type Beacon struct {
	UserID    int
	SessionID string
	PageURL   string
	Action    string
	IP        string
}

type Service struct {
	repo       Repo
	locator    Locator
	metrics    *metrics.Metrics
	geoTimeout time.Duration
	now        func() time.Time
}

func New(repo Repo, locator Locator, m *metrics.Metrics) *Service {
	return &Service{
		repo:       repo,
		locator:    locator,
		metrics:    m,
		geoTimeout: GeoTimeout,
		now:        time.Now,
	}
}

// Track records a beacon. A leave removes the session; anything else
// refreshes it. Geolocation and stale-row cleanup never fail the beacon.
func (s *Service) Track(ctx context.Context, b Beacon) error {
	b.SessionID = strings.TrimSpace(b.SessionID)
	if b.UserID <= 0 || b.SessionID == "" {
		return ErrInvalidBeacon
	}
	action := strings.ToLower(strings.TrimSpace(b.Action))
	s.metrics.TrackingBeacons.WithLabelValues(actionLabel(action)).Inc()

	if action == ActionLeave {
		if err := s.repo.DeleteBySession(ctx, b.SessionID); err != nil {
			zap.L().Error("can't remove session on leave", zap.String("sessionID", b.SessionID), zap.Error(err))
			return err
		}
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.geoTimeout)
	loc, err := s.locator.Lookup(lookupCtx, b.IP)
	cancel()
	if err != nil {
		zap.L().Warn("geolocation skipped", zap.String("ip", b.IP), zap.Error(err))
	}

	now := s.now()
	visitor := &domain.LiveVisitor{
		SessionID:  b.SessionID,
		UserID:     b.UserID,
		PageURL:    b.PageURL,
		Country:    loc.Country,
		Region:     loc.Region,
		City:       loc.City,
		LastSeenAt: now,
	}
	if err := s.repo.Upsert(ctx, visitor); err != nil {
		zap.L().Error("can't upsert session", zap.String("sessionID", b.SessionID), zap.Error(err))
		return err
	}

	if removed, err := s.repo.DeleteStale(ctx, now.Add(-LiveWindow)); err != nil {
		zap.L().Warn("stale session cleanup failed", zap.Error(err))
	} else if removed > 0 {
		zap.L().Debug("stale sessions removed", zap.Int64("count", removed))
	}
	return nil
}

// Live lists the user's sessions seen within LiveWindow.
func (s *Service) Live(ctx context.Context, userID int) ([]domain.LiveVisitor, error) {
	visitors, err := s.repo.ListActive(ctx, userID, s.now().Add(-LiveWindow))
	if err != nil {
		zap.L().Error("can't list live visitors", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return visitors, nil
}

func actionLabel(action string) string {
	switch action {
	case ActionPageview, ActionHeartbeat, ActionLeave:
		return action
	case "":
		return ActionPageview
	}
	return "other"
}
