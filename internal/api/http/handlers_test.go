package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhive/hostel-manager/internal/analytics"
	"github.com/stayhive/hostel-manager/internal/apisrv/auth"
	"github.com/stayhive/hostel-manager/internal/entity"
	"github.com/stayhive/hostel-manager/internal/ratelimit"
)

const masterPassword = "sUp3r-s3cret"

var errDown = errors.New("connection refused")

// stubAnalytics returns canned reports, or fails every call when
// failing is set.
type stubAnalytics struct {
	failing bool

	lastPeriod string
	lastLimit  int
}

func (a *stubAnalytics) DashboardStats(_ context.Context, _ time.Time) (*entity.DashboardStats, error) {
	if a.failing {
		return nil, errDown
	}
	return &entity.DashboardStats{TotalUsers: 42}, nil
}

func (a *stubAnalytics) UsersOverview(_ context.Context, _ time.Time) (*entity.UsersOverview, error) {
	if a.failing {
		return nil, errDown
	}
	return &entity.UsersOverview{Total: 42}, nil
}

func (a *stubAnalytics) BookingsOverview(_ context.Context, _ time.Time) (*entity.BookingsOverview, error) {
	if a.failing {
		return nil, errDown
	}
	return &entity.BookingsOverview{Total: 7}, nil
}

func (a *stubAnalytics) HostelsOverview(_ context.Context) (*entity.HostelsOverview, error) {
	if a.failing {
		return nil, errDown
	}
	return &entity.HostelsOverview{Total: 3}, nil
}

func (a *stubAnalytics) RevenueOverview(_ context.Context, period string, _ time.Time) (*entity.RevenueOverview, error) {
	if a.failing {
		return nil, errDown
	}
	p, err := analytics.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	a.lastPeriod = string(p)
	return &entity.RevenueOverview{Total: decimal.NewFromInt(100), Period: string(p)}, nil
}

func (a *stubAnalytics) RecentActivities(_ context.Context, limit int) ([]entity.Activity, error) {
	if a.failing {
		return nil, errDown
	}
	a.lastLimit = limit
	return []entity.Activity{{Id: "user-1", Type: entity.ActivityTypeUser}}, nil
}

type stubAdmin struct {
	hashes map[string]string
}

func (s *stubAdmin) PasswordHashByUsername(_ context.Context, un string) (string, error) {
	h, ok := s.hashes[un]
	if !ok {
		return "", errors.New("admin not found")
	}
	return h, nil
}

func (s *stubAdmin) AddAdmin(_ context.Context, un, pwHash string) error {
	s.hashes[un] = pwHash
	return nil
}

func (s *stubAdmin) DeleteAdmin(_ context.Context, un string) error {
	delete(s.hashes, un)
	return nil
}

func (s *stubAdmin) ChangePassword(_ context.Context, un, newHash string) error {
	s.hashes[un] = newHash
	return nil
}

// newFreshTestServer wires the server the way app.Start does, against an
// admin store with no accounts yet.
func newFreshTestServer(t *testing.T, a *stubAnalytics) *Server {
	t.Helper()

	authsrv, err := auth.New(&auth.Config{
		JWTSecret:      "test-secret",
		MasterPassword: masterPassword,
		JWTTTL:         "60m",
	}, &stubAdmin{hashes: map[string]string{}})
	require.NoError(t, err)

	return &Server{
		c:            &Config{},
		analytics:    a,
		authsrv:      authsrv,
		loginLimiter: ratelimit.NewLimiter(time.Minute, 5),
		done:         make(chan struct{}),
	}
}

func newTestServer(t *testing.T, a *stubAnalytics) *Server {
	t.Helper()

	s := newFreshTestServer(t, a)
	_, err := s.authsrv.Create(context.Background(), masterPassword, "root", "password")
	require.NoError(t, err)
	return s
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	token, err := s.authsrv.Login(context.Background(), "root", "password")
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(s *Server, method, target, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})
	rec := doRequest(s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})

	body, _ := json.Marshal(loginRequest{Username: "root", Password: "password"})
	rec := doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AuthToken)
}

func TestLoginBadCredentials(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})

	body, _ := json.Marshal(loginRequest{Username: "root", Password: "wrong"})
	rec := doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodPost, "/api/auth/login", "", []byte("{"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body, _ = json.Marshal(loginRequest{Username: "root"})
	rec = doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginThrottled(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})
	s.loginLimiter = ratelimit.NewLimiter(time.Minute, 2)

	body, _ := json.Marshal(loginRequest{Username: "root", Password: "wrong"})
	for i := 0; i < 2; i++ {
		rec := doRequest(s, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAdminBootstrap(t *testing.T) {
	a := &stubAnalytics{}
	s := newFreshTestServer(t, a)

	// no account exists yet, nothing to log in to
	body, _ := json.Marshal(loginRequest{Username: "root", Password: "password"})
	rec := doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the first account is provisioned with the master password
	body, _ = json.Marshal(createAdminRequest{MasterPassword: masterPassword, Username: "root", Password: "password"})
	rec = doRequest(s, http.MethodPost, "/api/auth/create", "", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AuthToken)

	rec = doRequest(s, http.MethodGet, "/api/admin/analytics/dashboard", "Bearer "+resp.AuthToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAdminRejected(t *testing.T) {
	s := newFreshTestServer(t, &stubAnalytics{})

	body, _ := json.Marshal(createAdminRequest{MasterPassword: "guess", Username: "root", Password: "password"})
	rec := doRequest(s, http.MethodPost, "/api/auth/create", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body, _ = json.Marshal(createAdminRequest{MasterPassword: masterPassword, Username: "root"})
	rec = doRequest(s, http.MethodPost, "/api/auth/create", "", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAdmin(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})

	body, _ := json.Marshal(deleteAdminRequest{MasterPassword: "guess", Username: "root"})
	rec := doRequest(s, http.MethodPost, "/api/auth/delete", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body, _ = json.Marshal(deleteAdminRequest{MasterPassword: masterPassword, Username: "root"})
	rec = doRequest(s, http.MethodPost, "/api/auth/delete", "", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	body, _ = json.Marshal(loginRequest{Username: "root", Password: "password"})
	rec = doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChangePasswordEndpoint(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})

	body, _ := json.Marshal(changePasswordRequest{Username: "root", CurrentPassword: "password", NewPassword: "better"})
	rec := doRequest(s, http.MethodPost, "/api/auth/change-password", "", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	body, _ = json.Marshal(loginRequest{Username: "root", Password: "better"})
	rec = doRequest(s, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	// unknown account reads the same as a bad password
	body, _ = json.Marshal(changePasswordRequest{Username: "ghost", CurrentPassword: masterPassword, NewPassword: "x"})
	rec = doRequest(s, http.MethodPost, "/api/auth/change-password", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{})

	rec := doRequest(s, http.MethodGet, "/api/admin/analytics/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/admin/analytics/dashboard", "Bearer garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAnalyticsEndpoints(t *testing.T) {
	a := &stubAnalytics{}
	s := newTestServer(t, a)
	token := adminToken(t, s)

	for _, target := range []string{
		"/api/admin/analytics/dashboard",
		"/api/admin/analytics/users",
		"/api/admin/analytics/bookings",
		"/api/admin/analytics/hostels",
		"/api/admin/analytics/revenue",
		"/api/admin/analytics/activities",
	} {
		rec := doRequest(s, http.MethodGet, target, token, nil)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json", target)
	}

	// period defaults to monthly when omitted
	assert.Equal(t, "monthly", a.lastPeriod)
}

func TestRevenuePeriodParam(t *testing.T) {
	a := &stubAnalytics{}
	s := newTestServer(t, a)
	token := adminToken(t, s)

	rec := doRequest(s, http.MethodGet, "/api/admin/analytics/revenue?period=weekly", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "weekly", a.lastPeriod)

	rec = doRequest(s, http.MethodGet, "/api/admin/analytics/revenue?period=yearly", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestActivitiesLimitParam(t *testing.T) {
	a := &stubAnalytics{}
	s := newTestServer(t, a)
	token := adminToken(t, s)

	rec := doRequest(s, http.MethodGet, "/api/admin/analytics/activities?limit=3", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, a.lastLimit)

	rec = doRequest(s, http.MethodGet, "/api/admin/analytics/activities?limit=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsBadGateway(t *testing.T) {
	s := newTestServer(t, &stubAnalytics{failing: true})
	token := adminToken(t, s)

	rec := doRequest(s, http.MethodGet, "/api/admin/analytics/dashboard", token, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
