// File: services/auth/service.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"cuidarmais/backend"
	"cuidarmais/models"
	"cuidarmais/session"

	"go.uber.org/zap"
)

// API is the slice of the remote client the auth flow needs.
type API interface {
	Login(ctx context.Context, email, senha string) (*models.TokenResponse, error)
	CurrentUser(ctx context.Context, token string) (*models.Practitioner, error)
}

// Service runs the login flow and the session lifecycle.
type Service interface {
	Login(ctx context.Context, email, senha string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	API      API
	Sessions *session.Store
	Logger   *zap.Logger
}

// Login exchanges credentials for a token, fetches the signed-in account and
// persists both as a new session.
func (s *DefaultService) Login(ctx context.Context, email, senha string) (*session.Session, error) {
	tok, err := s.API.Login(ctx, email, senha)
	if err != nil {
		return nil, fmt.Errorf("login rejeitado: %w", err)
	}

	user, err := s.API.CurrentUser(ctx, tok.Token)
	if err != nil {
		s.Logger.Error("login succeeded but user lookup failed", zap.Error(err))
		return nil, fmt.Errorf("falha ao carregar usuário: %w", err)
	}

	sess := &session.Session{Token: tok.Token, User: *user}
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("falha ao criar sessão: %w", err)
	}
	s.Logger.Info("practitioner signed in", zap.Int64("psicologoId", user.ID))
	return sess, nil
}

// Logout discards the session.
func (s *DefaultService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}

// LoginErrorMessage maps a login failure onto the banner text the form shows:
// the API's own message for credential rejections, a generic one otherwise.
func LoginErrorMessage(err error) string {
	if errors.Is(err, backend.ErrUnauthorized) {
		return "Credenciais inválidas"
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && (apiErr.Status == 400 || apiErr.Status == 403) {
		if apiErr.Message != "" && apiErr.Message != "Erro desconhecido" {
			return apiErr.Message
		}
		return "Credenciais inválidas"
	}
	return "Erro inesperado. Tente novamente."
}
