// File: services/patients/service.go
package patients

import (
	"context"
	"fmt"
	"sort"

	"cuidarmais/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// enrichmentConcurrency caps the per-patient appointment fan-out.
const enrichmentConcurrency = 8

// DefaultListService is the production implementation.
type DefaultListService struct {
	API    API
	Logger *zap.Logger
}

// Load fetches the patient collection, enriches every patient with their
// pending appointments in parallel and sorts the result. A failed enrichment
// degrades that patient to an empty appointment list and zero counters; a
// failed collection fetch aborts the whole load.
func (s *DefaultListService) Load(ctx context.Context, token string, psicologoID int64) ([]models.Patient, error) {
	fetched, err := s.API.AllPatientsByPractitioner(ctx, token, psicologoID)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar pacientes: %w", err)
	}

	pacientes := make([]models.Patient, len(fetched))
	copy(pacientes, fetched)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)
	for i := range pacientes {
		g.Go(func() error {
			p := &pacientes[i]
			agendamentos, err := s.API.ActiveScheduledAppointments(gctx, token, p.ID)
			if err != nil {
				s.Logger.Warn("failed to load patient appointments",
					zap.Int64("pacienteId", p.ID), zap.Error(err))
				p.Agendamentos = nil
				p.SessoesRestantes = 0
				p.SessoesRealizadas = 0
				return nil
			}
			p.Agendamentos = agendamentos
			p.SessoesRestantes, p.SessoesRealizadas = countAppointments(agendamentos)
			return nil
		})
	}
	// Enrichment tasks swallow their own errors, so Wait only propagates a
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortPatients(pacientes)
	return pacientes, nil
}

func countAppointments(agendamentos []models.Appointment) (restantes, realizadas int) {
	for _, a := range agendamentos {
		switch a.Status {
		case models.AppointmentScheduled:
			restantes++
		case models.AppointmentCompleted:
			realizadas++
		}
	}
	return restantes, realizadas
}

// sortPatients orders by last name then first name with pt-BR collation.
func sortPatients(pacientes []models.Patient) {
	coll := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(pacientes, func(i, j int) bool {
		if c := coll.CompareString(pacientes[i].Sobrenome, pacientes[j].Sobrenome); c != 0 {
			return c < 0
		}
		return coll.CompareString(pacientes[i].Nome, pacientes[j].Nome) < 0
	})
}

// Deactivate inactivates the patient and their linked appointments.
func (s *DefaultListService) Deactivate(ctx context.Context, token string, id int64) error {
	if err := s.API.DeactivatePatient(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao inativar paciente: %w", err)
	}
	return nil
}

// Reactivate brings an inactive patient back.
func (s *DefaultListService) Reactivate(ctx context.Context, token string, id int64) error {
	if err := s.API.ReactivatePatient(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao reativar paciente: %w", err)
	}
	return nil
}

// CreateAdditionalSessions appends one more package of sessions.
func (s *DefaultListService) CreateAdditionalSessions(ctx context.Context, token string, id int64) error {
	if err := s.API.CreateAdditionalSessions(ctx, token, id); err != nil {
		return fmt.Errorf("falha ao criar sessões adicionais: %w", err)
	}
	return nil
}
