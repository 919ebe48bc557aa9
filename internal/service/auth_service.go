package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"officedir-data/internal/credentials"
	"officedir-data/internal/repository"
	"officedir-data/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService verifies admin credentials and owns the session state on top
// of the KV store. The credential check itself is pure; nothing here keeps
// process-wide mutable auth state.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Session(ctx context.Context, token string) (*Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	employees  repository.EmployeesRepository
	sessions   store.KV
	sessionTTL time.Duration
	logger     *zap.Logger
}

func NewAuthService(employees repository.EmployeesRepository, sessions store.KV, sessionTTL time.Duration, logger *zap.Logger) AuthService {
	return &authService{
		employees:  employees,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

type LoginRequest struct {
	Email    string
	Password string
}

// Session is the stored login state resolved from a bearer token.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Session
	Token string `json:"token"`
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", repository.ErrInvalidArgument)
	}

	admin, err := s.employees.FindActiveAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("login failed: no matching active admin", zap.String("email", email))
			return nil, fmt.Errorf("invalid credentials: %w", repository.ErrUnauthorized)
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if !admin.AdminPassword.Valid || admin.AdminPassword.String == "" {
		s.logger.Warn("login failed: admin has no password set", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials: %w", repository.ErrUnauthorized)
	}

	supplied := credentials.Hash(req.Password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(admin.AdminPassword.String)) != 1 {
		s.logger.Warn("login failed: password mismatch", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials: %w", repository.ErrUnauthorized)
	}

	session := Session{ID: admin.ID, Email: email}
	if admin.Name.Valid {
		session.Name = admin.Name.String
	}

	token := uuid.NewString()
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.sessions.Set(ctx, sessionKey(token), string(payload), s.sessionTTL); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	s.logger.Info("admin logged in", zap.String("id", admin.ID))
	return &LoginResponse{Session: session, Token: token}, nil
}

func (s *authService) Session(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", repository.ErrUnauthorized)
	}
	raw, err := s.sessions.Get(ctx, sessionKey(token))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, fmt.Errorf("unknown or expired session: %w", repository.ErrUnauthorized)
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionKey(token))
}

func sessionKey(token string) string {
	return "session:" + token
}
