package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gerenciaroi/internal/domain"
	"github.com/GlebRadaev/gerenciaroi/internal/dto"
	"github.com/GlebRadaev/gerenciaroi/internal/plans"
	"github.com/GlebRadaev/gerenciaroi/internal/service/credentialservice"
	"github.com/GlebRadaev/gerenciaroi/pkg/auth"
	"github.com/GlebRadaev/gerenciaroi/pkg/utils"
)

func NewMock(t *testing.T) (*CredentialHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, body string, userID int, id string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestTokenPreview(t *testing.T) {
	assert.Equal(t, "EAAB...wxyz", tokenPreview("EAABsecretsecretwxyz"))
	assert.Equal(t, "****", tokenPreview("short"))
	assert.Equal(t, "****", tokenPreview(""))
}

func TestCreateCredential(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Created",
			body: `{"platform":"meta","name":"Main","access_token":"EAABsecretsecretwxyz","account_id":"act_1"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, credentialservice.CreateInput{
					Platform: "meta", Name: "Main", AccessToken: "EAABsecretsecretwxyz", AccountID: "act_1",
				}).Return(&domain.APICredential{
					ID: "c1", Platform: "meta", Name: "Main", AccessToken: "EAABsecretsecretwxyz", AccountID: "act_1", Status: domain.StatusActive,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid body",
			body:          `[`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Missing token",
			body: `{"platform":"meta","name":"Main"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, credentialservice.ErrInvalidCredential)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: credentialservice.ErrInvalidCredential.Error(),
		},
		{
			name: "Trial expired",
			body: `{"platform":"meta","name":"Main","access_token":"t"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, plans.ErrTrialExpired)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: plans.ErrTrialExpired.Error(),
		},
		{
			name: "Ad account limit",
			body: `{"platform":"meta","name":"Second","access_token":"t"}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, gomock.Any()).Return(nil, plans.ErrLimitReached)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: plans.ErrLimitReached.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.CreateCredential(rr, newRequest(http.MethodPost, "/api/credentials", tt.body, 1, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.CredentialResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "EAAB...wxyz", resp.TokenPreview)
			assert.NotContains(t, rr.Body.String(), "secretsecret")
		})
	}
}

func TestGetCredentials(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any(), 1).Return([]domain.APICredential{{ID: "c1", AccessToken: "abcdefghijkl"}}, nil)
	rr := httptest.NewRecorder()
	handler.GetCredentials(rr, newRequest(http.MethodGet, "/api/credentials", "", 1, ""))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.CredentialResponseDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "abcd...ijkl", resp[0].TokenPreview)

	service.EXPECT().List(gomock.Any(), 2).Return(nil, errors.New("db down"))
	rr = httptest.NewRecorder()
	handler.GetCredentials(rr, newRequest(http.MethodGet, "/api/credentials", "", 2, ""))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetCredential(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), 1, "c1").Return(&domain.APICredential{ID: "c1"}, nil)
	rr := httptest.NewRecorder()
	handler.GetCredential(rr, newRequest(http.MethodGet, "/api/credentials/c1", "", 1, "c1"))
	assert.Equal(t, http.StatusOK, rr.Code)

	service.EXPECT().Get(gomock.Any(), 1, "c9").Return(nil, credentialservice.ErrCredentialNotFound)
	rr = httptest.NewRecorder()
	handler.GetCredential(rr, newRequest(http.MethodGet, "/api/credentials/c9", "", 1, "c9"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStatusAndDelete(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().SetStatus(gomock.Any(), 1, "c1", "inactive").Return(nil)
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, newRequest(http.MethodPatch, "/api/credentials/c1/status", `{"status":"inactive"}`, 1, "c1"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().SetStatus(gomock.Any(), 1, "c1", "on").Return(credentialservice.ErrInvalidStatus)
	rr = httptest.NewRecorder()
	handler.UpdateStatus(rr, newRequest(http.MethodPatch, "/api/credentials/c1/status", `{"status":"on"}`, 1, "c1"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	service.EXPECT().Delete(gomock.Any(), 1, "c1").Return(nil)
	rr = httptest.NewRecorder()
	handler.DeleteCredential(rr, newRequest(http.MethodDelete, "/api/credentials/c1", "", 1, "c1"))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	service.EXPECT().Delete(gomock.Any(), 1, "c2").Return(credentialservice.ErrCredentialNotFound)
	rr = httptest.NewRecorder()
	handler.DeleteCredential(rr, newRequest(http.MethodDelete, "/api/credentials/c2", "", 1, "c2"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
