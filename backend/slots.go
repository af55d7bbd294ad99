// File: backend/slots.go
package backend

import (
	"context"
	"fmt"

	"cuidarmais/models"
)

// SlotsByWeekday lists every weekly slot of a practitioner for one weekday.
func (c *Client) SlotsByWeekday(ctx context.Context, token string, psicologoID int64, diaSemana string) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	path := fmt.Sprintf("/api/horarios-disponiveis/psicologo/%d/dia-semana/%s", psicologoID, diaSemana)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FreeSlots lists the slots not occupied by any patient.
func (c *Client) FreeSlots(ctx context.Context, token string, psicologoID int64) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	path := fmt.Sprintf("/api/horarios-disponiveis/psicologo/%d/livres", psicologoID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OccupiedSlots lists the slots currently held by patients.
func (c *Client) OccupiedSlots(ctx context.Context, token string, psicologoID int64) ([]models.AvailableSlot, error) {
	var out []models.AvailableSlot
	path := fmt.Sprintf("/api/horarios-disponiveis/psicologo/%d/ocupados", psicologoID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}
