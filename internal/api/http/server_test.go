package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/domain"
	"naturexpress-cargo-backend/internal/repository/realtimedb"
	"naturexpress-cargo-backend/internal/service"
	"naturexpress-cargo-backend/internal/store/memory"
)

type staticVerifier struct {
	uids map[string]string
}

func (v *staticVerifier) VerifyIDToken(_ context.Context, token string) (string, error) {
	if uid, ok := v.uids[token]; ok {
		return uid, nil
	}
	return "", fmt.Errorf("unknown token")
}

type staticAuthClient struct{}

func (staticAuthClient) SignIn(_ context.Context, email, password string) (*auth.Session, error) {
	if password != "secret" {
		return nil, &auth.Error{Code: "INVALID_PASSWORD"}
	}
	return &auth.Session{UID: "admin-1", Email: email, IDToken: "admin-token"}, nil
}

func (staticAuthClient) SendPasswordReset(context.Context, string) error { return nil }

type apiFixture struct {
	server *httptest.Server
	store  *memory.Store
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	st := memory.New()
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, "users/admin-1", domain.User{
		ID: "admin-1", Name: "Admin", Email: "admin@example.com", Role: domain.UserRoleAdmin,
	}))
	require.NoError(t, st.Set(ctx, "users/user-1", domain.User{
		ID: "user-1", Name: "Asha", Email: "asha@example.com", Role: domain.UserRoleUser,
	}))

	services := realtimedb.NewServiceRepository(st)
	requests := realtimedb.NewRequestRepository(st)
	enquiries := realtimedb.NewEnquiryRepository(st)
	users := realtimedb.NewUserRepository(st)

	catalog := service.NewCatalogService(services)
	requestSvc := service.NewRequestService(requests, users, nil, nil)
	enquirySvc := service.NewEnquiryService(enquiries, users, nil)
	accounts := service.NewAccountService(staticAuthClient{}, users)

	handlers := NewHandlers(accounts, catalog, requestSvc, enquirySvc)
	guard := NewAuthMiddleware(&staticVerifier{uids: map[string]string{
		"admin-token": "admin-1",
		"user-token":  "user-1",
	}}, users)

	server := httptest.NewServer(NewRouter(handlers, guard))
	t.Cleanup(server.Close)
	return &apiFixture{server: server, store: st}
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)
	resp := f.do(t, http.MethodGet, "/v1/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/login", "", map[string]string{
		"email": "admin@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[loginResponse](t, resp)
	assert.Equal(t, "admin-1", body.UID)
	require.NotNil(t, body.User)
	assert.Equal(t, domain.UserRoleAdmin, body.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/login", "", map[string]string{
		"email": "admin@example.com", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode[errorBody](t, resp)
	assert.Equal(t, "INVALID_PASSWORD", body.Error)
}

func TestLoginRejectsBadForm(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/login", "", map[string]string{
		"email": "not-an-email", "password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[errorBody](t, resp)
	assert.Equal(t, "email", body.Field)
}

func TestGuardedRouteRequiresToken(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/v1/services", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/v1/services", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRouteRejectsPlainUser(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/services", "user-token", map[string]string{
		"name": "Express", "price": "12.5", "description": "d",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestServiceLifecycleOverAPI(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/services", "admin-token", map[string]string{
		"name": "Express Freight", "price": "12.5", "description": "Door to door",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[domain.Service](t, resp)
	require.NotEmpty(t, created.ID)

	// Inactive services disappear from the user-facing list.
	resp = f.do(t, http.MethodPost, "/v1/services/"+created.ID+"/toggle", "admin-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/v1/services", "user-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]domain.Service](t, resp))

	resp = f.do(t, http.MethodGet, "/v1/services", "admin-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]domain.Service](t, resp), 1)
}

func TestCreateServiceValidation(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/services", "admin-token", map[string]string{
		"name": "", "price": "12.5", "description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[errorBody](t, resp)
	assert.Equal(t, "Service name is required", body.Error)
	assert.Equal(t, "name", body.Field)
}

func TestRequestFlowOverAPI(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/services", "admin-token", map[string]string{
		"name": "Express Freight", "price": "12.5", "description": "Door to door",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	svc := decode[domain.Service](t, resp)

	resp = f.do(t, http.MethodPost, "/v1/requests", "user-token", map[string]string{
		"serviceId":        svc.ID,
		"pickupAddress":    "12 Dock Rd",
		"deliveryAddress":  "9 Market St",
		"cargoType":        "Electronics",
		"cargoDescription": "Boxed monitors",
		"numberOfPackages": "2",
		"weight":           "10",
		"transportMode":    "Road",
		"pickupDate":       "2026-09-04",
		"contactNumber":    "9876543210",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	req := decode[domain.ServiceRequest](t, resp)
	assert.Equal(t, 125.0, req.TotalPrice)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, "Asha", req.UserName)

	// Requester sees it under their own list.
	resp = f.do(t, http.MethodGet, "/v1/requests/mine", "user-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]domain.ServiceRequest](t, resp), 1)

	// Admin confirms, then an illegal jump is refused.
	resp = f.do(t, http.MethodPut, "/v1/requests/"+req.ID+"/status", "admin-token", map[string]string{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodPut, "/v1/requests/"+req.ID+"/status", "admin-token", map[string]string{
		"status": "delivered",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStoreFailureSurfacedVerbatim(t *testing.T) {
	f := newAPIFixture(t)
	f.store.GetErr = errors.New("read services: connection reset")

	resp := f.do(t, http.MethodGet, "/v1/services", "user-token", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body := decode[errorBody](t, resp)
	assert.Equal(t, "read services: connection reset", body.Error)
}

func TestRequestNotFound(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/v1/requests/missing", "admin-token", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnquirySubmissionIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/v1/enquiries", "", map[string]string{
		"name":     "Asha",
		"phone":    "9876543210",
		"email":    "asha@example.com",
		"packages": "3",
		"weight":   "25",
		"from":     "Chennai",
		"to":       "Pune",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	enq := decode[domain.ContactEnquiry](t, resp)
	assert.NotEmpty(t, enq.ID)
	assert.Empty(t, enq.UserID)

	// Reading the inbox stays admin only.
	resp = f.do(t, http.MethodGet, "/v1/enquiries", "user-token", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/v1/enquiries", "admin-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]domain.ContactEnquiry](t, resp), 1)
}
