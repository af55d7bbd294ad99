// File: backend/patients.go
package backend

import (
	"context"
	"fmt"

	"cuidarmais/models"
)

// PatientsByPractitioner lists the active, scheduled patients of a practitioner.
func (c *Client) PatientsByPractitioner(ctx context.Context, token string, psicologoID int64) ([]models.Patient, error) {
	var out []models.Patient
	path := fmt.Sprintf("/api/pacientes/psicologo/%d", psicologoID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllPatientsByPractitioner lists every patient, inactive ones included.
func (c *Client) AllPatientsByPractitioner(ctx context.Context, token string, psicologoID int64) ([]models.Patient, error) {
	var out []models.Patient
	path := fmt.Sprintf("/api/pacientes/psicologo/%d/todos", psicologoID)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Patient fetches a single patient record.
func (c *Client) Patient(ctx context.Context, token string, id int64) (*models.Patient, error) {
	var out models.Patient
	if err := c.get(ctx, fmt.Sprintf("/api/pacientes/%d", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePatient registers a patient together with their weekly slot.
func (c *Client) CreatePatient(ctx context.Context, token string, p models.PatientPayload) error {
	return c.post(ctx, "/api/pacientes", token, p, nil)
}

// UpdatePatient rewrites a patient, moving the appointment series when the
// weekly slot changed.
func (c *Client) UpdatePatient(ctx context.Context, token string, id int64, p models.PatientPayload) error {
	return c.put(ctx, fmt.Sprintf("/api/pacientes/%d", id), token, p, nil)
}

// DeletePatient removes a patient record.
func (c *Client) DeletePatient(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/pacientes/%d", id), token)
}

// DeactivatePatient inactivates the patient and their linked appointments.
func (c *Client) DeactivatePatient(ctx context.Context, token string, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/pacientes/%d/inativar", id), token, struct{}{}, nil)
}

// ReactivatePatient brings an inactive patient back.
func (c *Client) ReactivatePatient(ctx context.Context, token string, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/pacientes/%d/reativar", id), token, struct{}{}, nil)
}

// CreateAdditionalSessions appends one more package of sessions.
func (c *Client) CreateAdditionalSessions(ctx context.Context, token string, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/pacientes/%d/criar-sessoes-adicionais", id), token, struct{}{}, nil)
}

// CurrentSlot fetches the weekly slot the patient currently occupies.
func (c *Client) CurrentSlot(ctx context.Context, token string, id int64) (*models.AvailableSlot, error) {
	var out models.AvailableSlot
	if err := c.get(ctx, fmt.Sprintf("/api/pacientes/%d/horario-atual", id), token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActiveScheduledAppointments lists the patient's pending appointments, the
// per-patient enrichment feed of the patient list.
func (c *Client) ActiveScheduledAppointments(ctx context.Context, token string, id int64) ([]models.Appointment, error) {
	var out []models.Appointment
	path := fmt.Sprintf("/api/pacientes/%d/agendamentos/ativos-agendados", id)
	if err := c.get(ctx, path, token, &out); err != nil {
		return nil, err
	}
	return out, nil
}
