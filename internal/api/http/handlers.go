package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"github.com/stayhive/hostel-manager/internal/analytics"
	"github.com/stayhive/hostel-manager/internal/apisrv/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

type createAdminRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

type deleteAdminRequest struct {
	MasterPassword string `json:"masterPassword"`
	Username       string `json:"username"`
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow(r.RemoteAddr) {
		render.Render(w, r, ErrTooManyRequests())
		return
	}

	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if req.Username == "" || req.Password == "" {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("username and password are required")))
		return
	}

	token, err := s.authsrv.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	s.loginLimiter.Reset(r.RemoteAddr)
	render.JSON(w, r, loginResponse{AuthToken: token})
}

// handleCreateAdmin provisions an admin account. It is gated by the master
// password, which is also how the first account gets created on a fresh
// install.
func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow(r.RemoteAddr) {
		render.Render(w, r, ErrTooManyRequests())
		return
	}

	var req createAdminRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if req.MasterPassword == "" || req.Username == "" || req.Password == "" {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("masterPassword, username and password are required")))
		return
	}

	token, err := s.authsrv.Create(r.Context(), req.MasterPassword, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	s.loginLimiter.Reset(r.RemoteAddr)
	render.JSON(w, r, loginResponse{AuthToken: token})
}

func (s *Server) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow(r.RemoteAddr) {
		render.Render(w, r, ErrTooManyRequests())
		return
	}

	var req deleteAdminRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if req.MasterPassword == "" || req.Username == "" {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("masterPassword and username are required")))
		return
	}

	if err := s.authsrv.Delete(r.Context(), req.MasterPassword, req.Username); err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	s.loginLimiter.Reset(r.RemoteAddr)
	render.NoContent(w, r)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if !s.loginLimiter.Allow(r.RemoteAddr) {
		render.Render(w, r, ErrTooManyRequests())
		return
	}

	var req changePasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if req.Username == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("username, currentPassword and newPassword are required")))
		return
	}

	token, err := s.authsrv.ChangePassword(r.Context(), req.Username, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			render.Render(w, r, ErrUnauthorized(err))
			return
		}
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	s.loginLimiter.Reset(r.RemoteAddr)
	render.JSON(w, r, loginResponse{AuthToken: token})
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.analytics.DashboardStats(r.Context(), time.Now().UTC())
	if err != nil {
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, stats)
}

func (s *Server) handleUsersOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.analytics.UsersOverview(r.Context(), time.Now().UTC())
	if err != nil {
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, overview)
}

func (s *Server) handleBookingsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.analytics.BookingsOverview(r.Context(), time.Now().UTC())
	if err != nil {
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, overview)
}

func (s *Server) handleHostelsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.analytics.HostelsOverview(r.Context())
	if err != nil {
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, overview)
}

func (s *Server) handleRevenueOverview(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = string(analytics.PeriodMonthly)
	}

	overview, err := s.analytics.RevenueOverview(r.Context(), period, time.Now().UTC())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidPeriod) {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, overview)
}

func (s *Server) handleRecentActivities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("limit must be an integer: %w", err)))
			return
		}
	}

	activities, err := s.analytics.RecentActivities(r.Context(), limit)
	if err != nil {
		render.Render(w, r, ErrBadGateway(err))
		return
	}
	render.JSON(w, r, activities)
}
