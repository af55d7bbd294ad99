// File: services/agenda/service.go
package agenda

import (
	"context"
	"fmt"
	"time"

	"cuidarmais/models"

	"go.uber.org/zap"
)

// API is the slice of the remote client the day agenda needs.
type API interface {
	SessionsByDate(ctx context.Context, token string, psicologoID int64, data string) ([]models.TherapySession, error)
	ConfirmSession(ctx context.Context, token string, id int64) error
	MarkSessionMissed(ctx context.Context, token string, id int64) error
	CancelSession(ctx context.Context, token string, id int64) error
}

// Service lists the sessions of one calendar day and applies the session
// actions. Every action is followed by a reload of the day on the caller's
// side.
type Service interface {
	DaySessions(ctx context.Context, token string, psicologoID int64, date time.Time) ([]models.TherapySession, error)
	Confirm(ctx context.Context, token string, id int64) error
	MarkMissed(ctx context.Context, token string, id int64) error
	Cancel(ctx context.Context, token string, id int64) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	API    API
	Logger *zap.Logger
}

// DaySessions fetches the practitioner's sessions for the selected date.
func (s *DefaultService) DaySessions(ctx context.Context, token string, psicologoID int64, date time.Time) ([]models.TherapySession, error) {
	sessoes, err := s.API.SessionsByDate(ctx, token, psicologoID, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar sessões: %w", err)
	}
	return sessoes, nil
}

// Confirm marks the session as held.
func (s *DefaultService) Confirm(ctx context.Context, token string, id int64) error {
	if err := s.API.ConfirmSession(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao confirmar sessão: %w", err)
	}
	return nil
}

// MarkMissed records a no-show.
func (s *DefaultService) MarkMissed(ctx context.Context, token string, id int64) error {
	if err := s.API.MarkSessionMissed(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao registrar falta: %w", err)
	}
	return nil
}

// Cancel cancels the session.
func (s *DefaultService) Cancel(ctx context.Context, token string, id int64) error {
	if err := s.API.CancelSession(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao cancelar sessão: %w", err)
	}
	return nil
}
