package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/stayhive/hostel-manager/internal/auth/jwt"
	"github.com/stayhive/hostel-manager/internal/auth/pwhash"
	"github.com/stayhive/hostel-manager/internal/dependency"
)

// ErrUnauthenticated is returned when credentials do not match,
// mapped to 401 by the HTTP layer.
var ErrUnauthenticated = errors.New("not authenticated")

// Server issues and verifies admin tokens.
type Server struct {
	adminRepository dependency.Admin
	pwhash          *pwhash.PasswordHasher
	JwtAuth         *jwtauth.JWTAuth
	jwtTTL          time.Duration
	c               *Config
	masterHash      string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret          string `mapstructure:"jwt_secret"`
	MasterPassword     string `mapstructure:"master_password"`
	PasswordHasherCost int    `mapstructure:"password_hasher_cost"`
	JWTTTL             string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config, ar dependency.Admin) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherCost)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}
	s := &Server{
		adminRepository: ar,
		pwhash:          ph,
		JwtAuth:         jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:               c,
		jwtTTL:          ttl,
		masterHash:      hash,
	}

	return s, nil
}

// Login gets an auth token for the provided username and password.
func (s *Server) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(username)

	pwHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return "", ErrUnauthenticated
	}

	if err := s.pwhash.Validate(password, pwHash); err != nil {
		return "", ErrUnauthenticated
	}

	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
}

// Create creates a new admin account, requires the master password.
func (s *Server) Create(ctx context.Context, masterPassword, username, password string) (string, error) {
	if err := s.pwhash.Validate(masterPassword, s.masterHash); err != nil {
		return "", ErrUnauthenticated
	}

	username = strings.ToLower(username)

	pwHash, err := s.pwhash.HashPassword(password)
	if err != nil {
		return "", err
	}

	if err := s.adminRepository.AddAdmin(ctx, username, pwHash); err != nil {
		return "", err
	}

	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
}

// Delete deletes an admin account, requires the master password.
func (s *Server) Delete(ctx context.Context, masterPassword, username string) error {
	if err := s.pwhash.Validate(masterPassword, s.masterHash); err != nil {
		return ErrUnauthenticated
	}
	return s.adminRepository.DeleteAdmin(ctx, strings.ToLower(username))
}

// ChangePassword changes the password of an admin account. It accepts
// either the current password or the master password.
func (s *Server) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (string, error) {
	username = strings.ToLower(username)

	currentPwdHash, err := s.adminRepository.PasswordHashByUsername(ctx, username)
	if err != nil {
		return "", ErrUnauthenticated
	}

	if err := s.pwhash.Validate(currentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(currentPassword, currentPwdHash); err != nil {
			return "", ErrUnauthenticated
		}
	}

	pwHashNew, err := s.pwhash.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	if err := s.adminRepository.ChangePassword(ctx, username, pwHashNew); err != nil {
		return "", err
	}

	return jwt.NewToken(s.JwtAuth, s.jwtTTL, username)
}

// WithAuth middleware checks if the request carries a valid token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		_, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
