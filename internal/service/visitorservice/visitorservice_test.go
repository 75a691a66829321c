package visitorservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/metrics"
	"github.com/GlebRadaev/gerenciaroi/pkg/geo"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLocator) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	locator := NewMockLocator(ctrl)

	service := New(repo, locator, metrics.New())
	service.now = func() time.Time { return fixedNow }
	return service, repo, locator
}

func TestTrack(t *testing.T) {
	campinas := geo.Location{Country: "Brazil", Region: "São Paulo", City: "Campinas"}

	tests := []struct {
		name          string
		beacon        Beacon
		prepareMock   func(repo *MockRepo, locator *MockLocator)
		expectedError error
	}{
		{
			name:   "Heartbeat upserts with geo and prunes",
			beacon: Beacon{UserID: 1, SessionID: "sess-1", PageURL: "/offer", Action: "heartbeat", IP: "200.147.67.142"},
			prepareMock: func(repo *MockRepo, locator *MockLocator) {
				locator.EXPECT().Lookup(gomock.Any(), "200.147.67.142").Return(campinas, nil)
				repo.EXPECT().Upsert(gomock.Any(), &domain.LiveVisitor{
					SessionID: "sess-1", UserID: 1, PageURL: "/offer",
					Country: "Brazil", Region: "São Paulo", City: "Campinas", LastSeenAt: fixedNow,
				}).Return(nil)
				repo.EXPECT().DeleteStale(gomock.Any(), fixedNow.Add(-60*time.Second)).Return(int64(3), nil)
			},
		},
		{
			name:   "Leave deletes the session only",
			beacon: Beacon{UserID: 1, SessionID: "sess-1", Action: "LEAVE"},
			prepareMock: func(repo *MockRepo, locator *MockLocator) {
				repo.EXPECT().DeleteBySession(gomock.Any(), "sess-1").Return(nil)
			},
		},
		{
			name:   "Geo failure still records the session",
			beacon: Beacon{UserID: 1, SessionID: "sess-1", IP: "200.147.67.142"},
			prepareMock: func(repo *MockRepo, locator *MockLocator) {
				locator.EXPECT().Lookup(gomock.Any(), "200.147.67.142").Return(geo.Location{}, geo.ErrLookupFailed)
				repo.EXPECT().Upsert(gomock.Any(), &domain.LiveVisitor{SessionID: "sess-1", UserID: 1, LastSeenAt: fixedNow}).Return(nil)
				repo.EXPECT().DeleteStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
		},
		{
			name:   "Cleanup failure is ignored",
			beacon: Beacon{UserID: 1, SessionID: "sess-1"},
			prepareMock: func(repo *MockRepo, locator *MockLocator) {
				locator.EXPECT().Lookup(gomock.Any(), "").Return(geo.Location{}, nil)
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().DeleteStale(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
		},
		{
			name:   "Upsert failure is returned",
			beacon: Beacon{UserID: 1, SessionID: "sess-1"},
			prepareMock: func(repo *MockRepo, locator *MockLocator) {
				locator.EXPECT().Lookup(gomock.Any(), "").Return(geo.Location{}, nil)
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Missing session",
			beacon:        Beacon{UserID: 1, SessionID: "  "},
			prepareMock:   func(repo *MockRepo, locator *MockLocator) {},
			expectedError: ErrInvalidBeacon,
		},
		{
			name:          "Missing user",
			beacon:        Beacon{SessionID: "sess-1"},
			prepareMock:   func(repo *MockRepo, locator *MockLocator) {},
			expectedError: ErrInvalidBeacon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, locator := NewMock(t)
			tt.prepareMock(repo, locator)

			err := service.Track(context.Background(), tt.beacon)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrack_SlowGeoDoesNotHoldBeacon(t *testing.T) {
	service, repo, locator := NewMock(t)
	service.geoTimeout = 20 * time.Millisecond

	locator.EXPECT().Lookup(gomock.Any(), "200.147.67.142").DoAndReturn(func(ctx context.Context, _ string) (geo.Location, error) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		<-ctx.Done()
		return geo.Location{}, ctx.Err()
	})
	repo.EXPECT().Upsert(gomock.Any(), &domain.LiveVisitor{
		SessionID: "sess-1", UserID: 1, PageURL: "/offer", LastSeenAt: fixedNow,
	}).Return(nil)
	repo.EXPECT().DeleteStale(gomock.Any(), fixedNow.Add(-LiveWindow)).Return(int64(0), nil)

	start := time.Now()
	err := service.Track(context.Background(), Beacon{UserID: 1, SessionID: "sess-1", PageURL: "/offer", IP: "200.147.67.142"})

	assert.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLive(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ListActive(gomock.Any(), 1, fixedNow.Add(-LiveWindow)).
		Return([]domain.LiveVisitor{{SessionID: "sess-1"}, {SessionID: "sess-2"}}, nil)
	visitors, err := service.Live(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, visitors, 2)

	repo.EXPECT().ListActive(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("database error"))
	_, err = service.Live(context.Background(), 1)
	assert.Error(t, err)
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "pageview", actionLabel(""))
	assert.Equal(t, "leave", actionLabel("leave"))
	assert.Equal(t, "other", actionLabel("scroll"))
}
