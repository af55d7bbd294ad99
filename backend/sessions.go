// File: backend/sessions.go
package backend

import (
	"context"
	"fmt"

	"cuidarmais/models"
)

// SessionsByDate lists a practitioner's sessions for one calendar day
// (yyyy-mm-dd).
func (c *Client) SessionsByDate(ctx context.Context, token string, psicologoID int64, data string) ([]models.TherapySession, error) {
	var out []models.TherapySession
	path := fmt.Sprintf("/api/sessoes/psicologo/%d/data/%s", psicologoID, data)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SessionsByPatient lists every session of one patient.
func (c *Client) SessionsByPatient(ctx context.Context, token string, pacienteID int64) ([]models.TherapySession, error) {
	var out []models.TherapySession
	path := fmt.Sprintf("/api/sessoes/paciente/%d", pacienteID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmSession marks a session as held.
func (c *Client) ConfirmSession(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/api/sessoes/%d/confirmar", id), token, struct{}{}, nil)
}

// MarkSessionMissed records a no-show.
func (c *Client) MarkSessionMissed(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/api/sessoes/%d/faltou", id), token, struct{}{}, nil)
}

// CancelSession cancels a scheduled session.
func (c *Client) CancelSession(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/api/sessoes/%d/cancelar", id), token, struct{}{}, nil)
}
