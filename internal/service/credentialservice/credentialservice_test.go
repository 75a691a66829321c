package credentialservice

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
	service.newID = func() string { return "c-1" }
	service.now = func() time.Time { return fixedNow }
	return service, repo, profileRepo
}

func TestCreate(t *testing.T) {
	expires := fixedNow.Add(60 * 24 * time.Hour)
	input := CreateInput{Platform: "Meta", Name: " Main ", AccessToken: "long", AccountID: "act_1", ExpiresAt: &expires}
	starter := &domain.Profile{Plan: plans.Starter}

	tests := []struct {
		name          string
		input         CreateInput
		prepareMock   func(repo *MockRepo, profileRepo *MockProfileRepo)
		expected      *domain.APICredential
		expectedError error
	}{
		{
			name:  "Created",
			input: input,
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(starter, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(1, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: &domain.APICredential{
				ID: "c-1", UserID: 1, Platform: "meta", Name: "Main", AccessToken: "long",
				AccountID: "act_1", ExpiresAt: &expires, Status: "active",
			},
		},
		{
			name:          "Missing token",
			input:         CreateInput{Platform: "meta", Name: "Main"},
			prepareMock:   func(repo *MockRepo, profileRepo *MockProfileRepo) {},
			expectedError: ErrInvalidCredential,
		},
		{
			name:  "Ad account limit reached",
			input: input,
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(starter, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(2, nil)
			},
			expectedError: plans.ErrLimitReached,
		},
		{
			name:  "Count fails",
			input: input,
			prepareMock: func(repo *MockRepo, profileRepo *MockProfileRepo) {
				profileRepo.EXPECT().LockByUserID(gomock.Any(), 1).Return(starter, nil)
				repo.EXPECT().CountByUserID(gomock.Any(), 1).Return(0, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, profileRepo := NewMock(t)
			tt.prepareMock(repo, profileRepo)

			credential, err := service.Create(context.Background(), 1, tt.input)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, credential)
		})
	}
}

func TestGet(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().GetByID(gomock.Any(), 1, "c-1").Return(&domain.APICredential{ID: "c-1"}, nil)
	credential, err := service.Get(context.Background(), 1, "c-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", credential.ID)

	repo.EXPECT().GetByID(gomock.Any(), 1, "c-2").Return(nil, nil)
	_, err = service.Get(context.Background(), 1, "c-2")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestSetStatusListDelete(t *testing.T) {
	service, repo, _ := NewMock(t)

	assert.ErrorIs(t, service.SetStatus(context.Background(), 1, "c-1", ""), ErrInvalidStatus)

	repo.EXPECT().UpdateStatus(gomock.Any(), 1, "c-1", "inactive").Return(false, nil)
	assert.ErrorIs(t, service.SetStatus(context.Background(), 1, "c-1", "inactive"), ErrCredentialNotFound)

	repo.EXPECT().ListByUserID(gomock.Any(), 1).Return(nil, nil)
	list, err := service.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Empty(t, list)

	repo.EXPECT().Delete(gomock.Any(), 1, "c-1").Return(true, nil)
	assert.NoError(t, service.Delete(context.Background(), 1, "c-1"))
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
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *domain.APICredential) error {
		stored.Add(1)
		return nil
	}).Times(1)

	in := CreateInput{Platform: "meta", Name: "Main", AccessToken: "EAAB-token", AccountID: "act_1"}
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Create(context.Background(), 1, in)
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
