package webhookservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/pg"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// serialTx runs each transaction body under one lock, the way the profile
// row lock serializes writers for a single user.
func serialTx(ctrl *gomock.Controller) *pg.MockTXManager {
	var mu sync.Mutex
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		mu.Lock()
		defer mu.Unlock()
		return fn(ctx)
	}).AnyTimes()
	return txManager
}

func NewMock(t *testing.T) (*Service, *MockRepo, *MockProfileRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)

	service := New(repo, profileRepo, serialTx(ctrl))
	ids := []string{"w-1", "aaaa-bbbb"}
	service.newID = func() string {
		id := ids[0]
		ids = append(ids[1:], id)
		return id
	}
	service.now = func() time.Time { return fixedNow }
	return service, repo, profileRepo
}

func TestCreate(t *testing.T) {
	activeTrial := &domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(time.Hour)}

	tests := []struct {
		name          string
		platform      string
		hookName      string
		prepareMock   func(repo *MockRepo, profileRepo *MockProfileRepo)
		expected      *domain.Webhook
		expectedError error
	}{
		{
			name:     "Created",
			platform: " Kiwify ",
			hookName: "Store",
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(activeTrial, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &domain.Webhook{ID: "w-1", UserID: 1, Platform: "kiwify", Name: "Store", Token: "aaaabbbb", Status: "active"},
		},
		{
			name:          "Missing name",
			platform:      "kiwify",
			prepareMock:   func(repo *MockRepo, profileRepo *MockProfileRepo) {},
			expectedError: ErrInvalidWebhook,
		},
		{
			name:     "Trial expired",
			platform: "kiwify",
			hookName: "Store",
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(&domain.Profile{Plan: plans.Trial, TrialEndsAt: fixedNow}, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(0, nil)
			},
			expectedError: plans.ErrTrialExpired,
		},
		{
			name:     "Limit reached",
			platform: "kiwify",
			hookName: "Store",
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(activeTrial, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(1, nil)
			},
			expectedError: plans.ErrLimitReached,
		},
		{
			name:     "Profile lookup fails",
			platform: "kiwify",
			hookName: "Store",
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Insert fails",
			platform: "kiwify",
			hookName: "Store",
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(&domain.Profile{Plan: plans.Scale}, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(50, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, profileRepo := NewMock(t)
			tt.prepareMock(repo, profileRepo)

			webhook, err := service.Create(context.Background(), 1, tt.platform, tt.hookName)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, webhook)
		})
	}
}

func TestSetStatus(t *testing.T) {
	service, repo, _ := NewMock(t)

	assert.ErrorIs(t, service.SetStatus(context.Background(), 1, "w-1", "paused"), ErrInvalidStatus)

	repo.EXPECT().UpdateStatus(gomock.Any(), 1, "w-1", "inactive").Return(true, nil)
	assert.NoError(t, service.SetStatus(context.Background(), 1, "w-1", "inactive"))

	repo.EXPECT().UpdateStatus(gomock.Any(), 1, "w-9", "active").Return(false, nil)
	assert.ErrorIs(t, service.SetStatus(context.Background(), 1, "w-9", "active"), ErrWebhookNotFound)
}

func TestListAndDelete(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.Webhook{{ID: "w-1"}}, nil)
	hooks, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, hooks, 1)

	repo.EXPECT().Delete(gomock.Any(), 1, "w-1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1, "w-1"))

	repo.EXPECT().Delete(gomock.Any(), 1, "w-1").Return(false, nil)
	assert.ErrorIs(t, service.Delete(context.Background(), 1, "w-1"), ErrWebhookNotFound)

	repo.EXPECT().Delete(gomock.Any(), 1, "w-1").Return(false, errors.New("database error"))
	assert.Error(t, service.Delete(context.Background(), 1, "w-1"))
}

func TestCreate_ConcurrentRequestsRespectLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	profileRepo := NewMockProfileRepo(ctrl)
	service := New(repo, profileRepo, serialTx(ctrl))
	service.now = func() time.Time { return fixedNow }

	var stored atomic.Int32
	profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).
		Return(&domain.Profile{UserID: 1, Plan: plans.Trial, TrialEndsAt: fixedNow.Add(time.Hour)}, nil).Times(2)
	repo.EXPECT().CountByUserID(gomock.Any(), 1).DoAndReturn(func(context.Context, int) (int, error) {
		return int(stored.Load()), nil
	}).Times(2)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *domain.Webhook) error {
		stored.Add(1)
		return nil
	}).Times(1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Create(context.Background(), 1, "kiwify", "Store")
		}(i)
	}
	wg.Wait()

	var created, blocked int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, plans.ErrLimitReached):
			blocked++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, blocked)
	assert.Equal(t, int32(1), stored.Load())
}

func TestCreate_BeginFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(NewMockRepo(ctrl), NewMockProfileRepo(ctrl), txManager)

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("can't begin transaction"))

	_, err := service.Create(context.Background(), 1, "kiwify", "Store")
	assert.EqualError(t, err, "can't begin transaction")
}
