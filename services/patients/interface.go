// File: services/patients/interface.go
package patients

import (
	"context"

	"cuidarmais/models"
)

// API is the slice of the remote client the patient list needs.
type API interface {
	AllPatientsByPractitioner(ctx context.Context, token string, psicologoID int64) ([]models.Patient, error)
	ActiveScheduledAppointments(ctx context.Context, token string, id int64) ([]models.Appointment, error)
	DeactivatePatient(ctx context.Context, token string, id int64) error
	ReactivatePatient(ctx context.Context, token string, id int64) error
	CreateAdditionalSessions(ctx context.Context, token string, id int64) error
}

// ListService produces the enriched, sorted patient collection and forwards
// the state-changing patient actions. After any mutation the caller reloads
// the full list; nothing is patched incrementally.
type ListService interface {
	Load(ctx context.Context, token string, psicologoID int64) ([]models.Patient, error)
	Deactivate(ctx context.Context, token string, id int64) error
	Reactivate(ctx context.Context, token string, id int64) error
	CreateAdditionalSessions(ctx context.Context, token string, id int64) error
}
