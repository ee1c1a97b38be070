package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "agrirent-backend/internal/api/http"
	"agrirent-backend/internal/config"
	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/security"
	"agrirent-backend/internal/service"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) SignupCustomer(ctx context.Context, in service.SignupInput) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockAuthService) SignupProvider(ctx context.Context, in service.SignupInput) (*domain.Provider, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockAuthService) SigninCustomer(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Customer), args.Error(2)
}
func (m *MockAuthService) SigninProvider(ctx context.Context, email, password string) (string, *domain.Provider, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Provider), args.Error(2)
}
func (m *MockAuthService) Activate(ctx context.Context, token string) (domain.UserType, string, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.UserType), args.String(1), args.Error(2)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string, userType domain.UserType) error {
	args := m.Called(ctx, email, userType)
	return args.Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) (domain.UserType, error) {
	args := m.Called(ctx, token, newPassword)
	return args.Get(0).(domain.UserType), args.Error(1)
}
func (m *MockAuthService) VerifyPassword(ctx context.Context, userType domain.UserType, accountID, password string) (bool, error) {
	args := m.Called(ctx, userType, accountID, password)
	return args.Bool(0), args.Error(1)
}

// MockAccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockAccountService) UpdateCustomer(ctx context.Context, id string, upd service.AccountUpdate) (*domain.Customer, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockAccountService) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}
func (m *MockAccountService) UpdateProvider(ctx context.Context, id string, upd service.AccountUpdate) (*domain.Provider, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

// MockEquipmentService
type MockEquipmentService struct {
	mock.Mock
}

func (m *MockEquipmentService) CreateEquipment(ctx context.Context, providerID string, in service.EquipmentInput) (*domain.Equipment, error) {
	args := m.Called(ctx, providerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) UpdateEquipment(ctx context.Context, callerID, id string, upd domain.EquipmentUpdate) (*domain.Equipment, error) {
	args := m.Called(ctx, callerID, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) ReplaceEquipment(ctx context.Context, callerID, id string, in service.EquipmentInput) (*domain.Equipment, error) {
	args := m.Called(ctx, callerID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) DeleteEquipment(ctx context.Context, callerID, id string) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}
func (m *MockEquipmentService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}
func (m *MockEquipmentService) ListProviderEquipment(ctx context.Context, providerID string) ([]domain.Equipment, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

// MockRequestService
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) CreateRequest(ctx context.Context, customerID string, in service.CreateRequestInput) (*domain.RentalRequest, error) {
	args := m.Called(ctx, customerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRequestService) GetRequest(ctx context.Context, callerID string, id string) (*domain.RentalRequest, error) {
	args := m.Called(ctx, callerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRequestService) ListForCustomer(ctx context.Context, customerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRequestService) ListForProvider(ctx context.Context, providerID string) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRequestService) Decide(ctx context.Context, providerID, requestID string, decision domain.RequestStatus, message string) (*service.DecisionResult, error) {
	args := m.Called(ctx, providerID, requestID, decision, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DecisionResult), args.Error(1)
}
func (m *MockRequestService) DeleteRequest(ctx context.Context, customerID, requestID string) error {
	args := m.Called(ctx, customerID, requestID)
	return args.Error(0)
}

type testEnv struct {
	router    http.Handler
	tokens    security.TokenManager
	auth      *MockAuthService
	accounts  *MockAccountService
	equipment *MockEquipmentService
	requests  *MockRequestService
}

func newTestEnv() *testEnv {
	cfg := &config.Config{}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}

	env := &testEnv{
		tokens:    security.NewTokenManager("test-secret", 60, 1440, 1440),
		auth:      new(MockAuthService),
		accounts:  new(MockAccountService),
		equipment: new(MockEquipmentService),
		requests:  new(MockRequestService),
	}
	env.router = httpapi.NewRouter(cfg, env.tokens, env.auth, env.accounts, env.equipment, env.requests)
	return env
}

func (e *testEnv) bearerFor(t *testing.T, accountID, email, userType string) string {
	t.Helper()
	token, err := e.tokens.GenerateAccessToken(accountID, email, userType)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(router http.Handler, method, path, auth, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	env := newTestEnv()

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/equipments"},
		{"POST", "/api/requests"},
		{"GET", "/api/users/u1"},
		{"PATCH", "/api/requests/r1/status"},
		{"POST", "/api/auth/verify-password"},
	} {
		w := doJSON(env.router, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestRouter_PublicAuthRoutes(t *testing.T) {
	env := newTestEnv()

	env.auth.On("SigninCustomer", mock.Anything, "ravi@farm.com", "secret1").
		Return("access-jwt", &domain.Customer{ID: "u1", Email: "ravi@farm.com"}, nil)

	w := doJSON(env.router, "POST", "/api/auth/user/signin", "", `{"email":"ravi@farm.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string          `json:"token"`
		User  domain.Customer `json:"user"`
	}
	// The login page stores response.data.user; the key must stay "user".
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "access-jwt", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestRouter_SigninRejectsBadCredentials(t *testing.T) {
	env := newTestEnv()

	env.auth.On("SigninCustomer", mock.Anything, "ravi@farm.com", "wrong").
		Return("", nil, service.ErrInvalidCredentials)

	w := doJSON(env.router, "POST", "/api/auth/user/signin", "", `{"email":"ravi@farm.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Error bodies carry a message field; that is what the web client shows.
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestRouter_CreateRequest(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "u1", "ravi@farm.com", "user")

	env.requests.On("CreateRequest", mock.Anything, "u1", mock.AnythingOfType("service.CreateRequestInput")).
		Return(&domain.RentalRequest{ID: "r1", Status: domain.RequestStatusPending}, nil)

	w := doJSON(env.router, "POST", "/api/requests", auth, `{"equipmentId":"e1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var rr domain.RentalRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rr))
	assert.Equal(t, domain.RequestStatusPending, rr.Status)
}

func TestRouter_ProvidersCannotCreateRequests(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "p1", "owner@agro.com", "provider")

	w := doJSON(env.router, "POST", "/api/requests", auth, `{"equipmentId":"e1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	env.requests.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_DecideReportsEquipmentSync(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "p1", "owner@agro.com", "provider")

	result := &service.DecisionResult{
		Request:         &domain.RentalRequest{ID: "r1", Status: domain.RequestStatusApproved},
		EquipmentSynced: false,
	}
	env.requests.On("Decide", mock.Anything, "p1", "r1", domain.RequestStatusApproved, "").
		Return(result, nil)

	w := doJSON(env.router, "PATCH", "/api/requests/r1/status", auth, `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Request          domain.RentalRequest `json:"request"`
		EquipmentUpdated bool                 `json:"equipmentUpdated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.RequestStatusApproved, resp.Request.Status)
	assert.False(t, resp.EquipmentUpdated)
}

func TestRouter_DecideConflictOnDecidedRequest(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "p1", "owner@agro.com", "provider")

	env.requests.On("Decide", mock.Anything, "p1", "r1", domain.RequestStatusApproved, "").
		Return(nil, domain.ErrRequestNotPending)

	w := doJSON(env.router, "PATCH", "/api/requests/r1/status", auth, `{"status":"approved"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_RequestListScopedByRole(t *testing.T) {
	env := newTestEnv()

	env.requests.On("ListForCustomer", mock.Anything, "u1").Return([]domain.RentalRequest{{ID: "r1"}}, nil)
	env.requests.On("ListForProvider", mock.Anything, "p1").Return([]domain.RentalRequest{{ID: "r2"}, {ID: "r3"}}, nil)

	w := doJSON(env.router, "GET", "/api/requests", env.bearerFor(t, "u1", "ravi@farm.com", "user"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var customerItems []domain.RentalRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customerItems))
	assert.Len(t, customerItems, 1)

	w = doJSON(env.router, "GET", "/api/requests", env.bearerFor(t, "p1", "owner@agro.com", "provider"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var providerItems []domain.RentalRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &providerItems))
	assert.Len(t, providerItems, 2)
}

func TestRouter_ProviderRequestsOwnerOnly(t *testing.T) {
	env := newTestEnv()

	env.requests.On("ListForProvider", mock.Anything, "p1").Return([]domain.RentalRequest{{ID: "r1"}}, nil)

	w := doJSON(env.router, "GET", "/api/providers/p1/requests", env.bearerFor(t, "p1", "owner@agro.com", "provider"), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(env.router, "GET", "/api/providers/p1/requests", env.bearerFor(t, "p2", "other@agro.com", "provider"), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_EquipmentValidationError(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "p1", "owner@agro.com", "provider")

	env.equipment.On("CreateEquipment", mock.Anything, "p1", mock.AnythingOfType("service.EquipmentInput")).
		Return(nil, service.ErrValidation)

	w := doJSON(env.router, "POST", "/api/equipments", auth, `{"name":"Baler"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UpdateOwnProfileOnly(t *testing.T) {
	env := newTestEnv()

	env.accounts.On("UpdateCustomer", mock.Anything, "u1", mock.AnythingOfType("service.AccountUpdate")).
		Return(&domain.Customer{ID: "u1", Name: "Ravi K"}, nil)

	w := doJSON(env.router, "PATCH", "/api/users/u1", env.bearerFor(t, "u1", "ravi@farm.com", "user"), `{"name":"Ravi K"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    domain.Customer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ravi K", resp.Data.Name)

	w = doJSON(env.router, "PATCH", "/api/users/u1", env.bearerFor(t, "u2", "someone@farm.com", "user"), `{"name":"Hax"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_VerifyPasswordUsesCallerIdentity(t *testing.T) {
	env := newTestEnv()
	auth := env.bearerFor(t, "u1", "ravi@farm.com", "user")

	env.auth.On("VerifyPassword", mock.Anything, domain.UserTypeCustomer, "u1", "secret1").Return(true, nil)

	w := doJSON(env.router, "POST", "/api/auth/verify-password", auth, `{"password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// The profile page gates edits on both success and isValid.
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp["success"])
	assert.True(t, resp["isValid"])
}

func TestRouter_ActivationRoleMismatch(t *testing.T) {
	env := newTestEnv()

	env.auth.On("Activate", mock.Anything, "some-token").Return(domain.UserTypeProvider, "AgroRentals", nil)

	w := doJSON(env.router, "GET", "/api/auth/user/activate/some-token", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
