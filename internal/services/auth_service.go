package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"salesdash/internal/config"
	"salesdash/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("authentication is not configured")
)

type authService struct {
	cfg          config.AuthConfig
	tokenService TokenServiceInterface
	metrics      MetricsRecorderInterface
}

func NewAuthService(
	cfg config.AuthConfig,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
) AuthServiceInterface {
	return &authService{
		cfg:          cfg,
		tokenService: tokenService,
		metrics:      metrics,
	}
}

// Login verifies dashboard credentials against the configured admin
// account and issues a bearer token on success.
func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		slog.Error("login rejected, ADMIN_PASSWORD_HASH is not set")
		return nil, ErrAuthNotConfigured
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))

	if !usernameMatch || passwordErr != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failure"})
		slog.Warn("login failed", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenService.GenerateToken(req.Username)
	if err != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "token_error"})
		slog.Error("failed to issue token", "username", req.Username, "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	slog.Info("login succeeded", "username", req.Username)

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}
