package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cuidarmais/models"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestBearerTokenHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "nome": "Paula"}`))
	})

	user, err := c.CurrentUser(context.Background(), "meu-token")
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if gotAuth != "Bearer meu-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if user.ID != 7 || user.Nome != "Paula" {
		t.Fatalf("user = %+v", user)
	}
}

func TestUnauthorizedMapsToErrUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.PatientsByPractitioner(context.Background(), "expirado", 7)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestForbiddenStaysAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"erro": "Acesso negado"}`))
	})

	err := c.DeactivatePatient(context.Background(), "tok", 1)
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("a 403 must not force a logout")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusForbidden || apiErr.Message != "Acesso negado" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"erro": "Horário já ocupado"}`))
	})

	err := c.CreatePatient(context.Background(), "tok", models.PatientPayload{Nome: "Ana"})
	if got := ErrorMessage(err); got != "Horário já ocupado" {
		t.Fatalf("ErrorMessage = %q", got)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`sem json`))
	})

	err := c.DeactivatePatient(context.Background(), "tok", 1)
	if got := ErrorMessage(err); got != "Erro desconhecido" {
		t.Fatalf("ErrorMessage = %q", got)
	}
	if got := ErrorMessage(errors.New("qualquer")); got != "Erro desconhecido" {
		t.Fatalf("non-API error = %q", got)
	}
}

func TestSessionActionPaths(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	if err := c.ConfirmSession(ctx, "tok", 42); err != nil {
		t.Fatalf("ConfirmSession: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/sessoes/42/confirmar" {
		t.Fatalf("got %s %s", gotMethod, gotPath)
	}

	if err := c.MarkSessionMissed(ctx, "tok", 42); err != nil {
		t.Fatalf("MarkSessionMissed: %v", err)
	}
	if gotPath != "/api/sessoes/42/faltou" {
		t.Fatalf("got %s", gotPath)
	}

	if err := c.CancelSession(ctx, "tok", 42); err != nil {
		t.Fatalf("CancelSession: %v", err)
	}
	if gotPath != "/api/sessoes/42/cancelar" {
		t.Fatalf("got %s", gotPath)
	}
}

func TestSlotAndPatientPaths(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	ctx := context.Background()

	if _, err := c.SlotsByWeekday(ctx, "tok", 7, "MONDAY"); err != nil {
		t.Fatalf("SlotsByWeekday: %v", err)
	}
	if gotPath != "/api/horarios-disponiveis/psicologo/7/dia-semana/MONDAY" {
		t.Fatalf("got %s", gotPath)
	}

	if _, err := c.FreeSlots(ctx, "tok", 7); err != nil {
		t.Fatalf("FreeSlots: %v", err)
	}
	if gotPath != "/api/horarios-disponiveis/psicologo/7/livres" {
		t.Fatalf("got %s", gotPath)
	}

	if _, err := c.OccupiedSlots(ctx, "tok", 7); err != nil {
		t.Fatalf("OccupiedSlots: %v", err)
	}
	if gotPath != "/api/horarios-disponiveis/psicologo/7/ocupados" {
		t.Fatalf("got %s", gotPath)
	}

	if _, err := c.SessionsByPatient(ctx, "tok", 3); err != nil {
		t.Fatalf("SessionsByPatient: %v", err)
	}
	if gotPath != "/api/sessoes/paciente/3" {
		t.Fatalf("got %s", gotPath)
	}

	if _, err := c.ActiveScheduledAppointments(ctx, "tok", 3); err != nil {
		t.Fatalf("ActiveScheduledAppointments: %v", err)
	}
	if gotPath != "/api/pacientes/3/agendamentos/ativos-agendados" {
		t.Fatalf("got %s", gotPath)
	}
}

func TestScheduleConfigPaths(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	if err := c.InitializeScheduleConfigs(ctx, "tok"); err != nil {
		t.Fatalf("InitializeScheduleConfigs: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/configuracao-agenda/inicializar" {
		t.Fatalf("got %s %s", gotMethod, gotPath)
	}

	if _, err := c.CanDeleteScheduleConfig(ctx, "tok", 5); err != nil {
		t.Fatalf("CanDeleteScheduleConfig: %v", err)
	}
	if gotPath != "/api/configuracao-agenda/5/pode-excluir" {
		t.Fatalf("got %s", gotPath)
	}

	if err := c.DeleteScheduleConfig(ctx, "tok", 5); err != nil {
		t.Fatalf("DeleteScheduleConfig: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/configuracao-agenda/5" {
		t.Fatalf("got %s %s", gotMethod, gotPath)
	}
}

func TestContextCancellationAbortsRequest(t *testing.T) {
	block := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Patient(ctx, "tok", 1)
	if err == nil {
		t.Fatal("cancelled context must abort the request")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
