// File: backend/schedule.go
package backend

import (
	"context"
	"fmt"

	"cuidarmais/models"
)

// ScheduleConfigs lists the weekly schedule configurations of a practitioner,
// one per weekday.
func (c *Client) ScheduleConfigs(ctx context.Context, token string, psicologoID int64) ([]models.ScheduleConfig, error) {
	var out []models.ScheduleConfig
	path := fmt.Sprintf("/api/configuracao-agenda/psicologo/%d", psicologoID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateScheduleConfig adds a weekday configuration.
func (c *Client) CreateScheduleConfig(ctx context.Context, token string, cfg models.ScheduleConfig) error {
	return c.post(ctx, "/api/configuracao-agenda", token, cfg, nil)
}

// UpdateScheduleConfig rewrites a weekday configuration.
func (c *Client) UpdateScheduleConfig(ctx context.Context, token string, id int64, cfg models.ScheduleConfig) error {
	return c.put(ctx, fmt.Sprintf("/api/configuracao-agenda/%d", id), token, cfg, nil)
}

// DeleteScheduleConfig removes a weekday configuration. Call
// CanDeleteScheduleConfig first; the API refuses when patients occupy slots.
func (c *Client) DeleteScheduleConfig(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/configuracao-agenda/%d", id), token)
}

// InitializeScheduleConfigs seeds the default weekday configurations.
func (c *Client) InitializeScheduleConfigs(ctx context.Context, token string) error {
	return c.post(ctx, "/api/configuracao-agenda/inicializar", token, struct{}{}, nil)
}

// CanDeleteScheduleConfig asks whether a configuration may be removed.
func (c *Client) CanDeleteScheduleConfig(ctx context.Context, token string, id int64) (*models.DeletionCheck, error) {
	var out models.DeletionCheck
	path := fmt.Sprintf("/api/configuracao-agenda/%d/pode-excluir", id)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
