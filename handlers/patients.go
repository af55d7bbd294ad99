// File: handlers/patients.go
package handlers

import (
	"errors"
	"strconv"

	"cuidarmais/backend"
	"cuidarmais/middleware"
	"cuidarmais/models"
	"cuidarmais/services/patients"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientsHandler serves the patient list page and its row actions.
type PatientsHandler struct {
	base
	List patients.ListService
}

// NewPatientsHandler builds the patient list handler.
func NewPatientsHandler(sessions *session.Store, list patients.ListService) *PatientsHandler {
	return &PatientsHandler{base: base{Sessions: sessions}, List: list}
}

// ListPatientsHandler loads, filters and renders the patient list. The list
// defaults to active patients; status and search come from the query string
// so filters survive a reload.
func (h *PatientsHandler) ListPatientsHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	status := patients.ParseStatusFilter(c.Query("status"))
	busca := c.Query("busca")

	pacientes, err := h.List.Load(c.Request.Context(), sess.Token, sess.User.ID)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		getLogger(c).Error("failed to load patients", zap.Error(err))
		h.render(c, "pacientes.html", "Pacientes", gin.H{
			"Erro":      "Erro ao carregar pacientes: " + backend.ErrorMessage(err),
			"Pacientes": []models.Patient{},
			"Status":    string(status),
			"Busca":     busca,
		})
		return
	}

	filtrados := patients.ApplyFilters(pacientes, status, busca)
	h.render(c, "pacientes.html", "Pacientes", gin.H{
		"Pacientes": filtrados,
		"Total":     len(pacientes),
		"Status":    string(status),
		"Busca":     busca,
	})
}

// DeactivatePatientHandler inactivates the patient and every linked
// appointment, then reloads the list from the source of truth.
func (h *PatientsHandler) DeactivatePatientHandler(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	if err := h.List.Deactivate(c.Request.Context(), sess.Token, id); err != nil {
		h.failAction(c, err, "/pacientes", "Erro ao inativar paciente")
		return
	}
	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Paciente inativado com sucesso!"})
}

// ReactivatePatientHandler brings an inactive patient back.
func (h *PatientsHandler) ReactivatePatientHandler(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	if err := h.List.Reactivate(c.Request.Context(), sess.Token, id); err != nil {
		h.failAction(c, err, "/pacientes", "Erro ao reativar paciente")
		return
	}
	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Paciente reativado com sucesso!"})
}

// CreateAdditionalSessionsHandler appends one more package of sessions.
func (h *PatientsHandler) CreateAdditionalSessionsHandler(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}
	sess := middleware.SessionFrom(c)
	if err := h.List.CreateAdditionalSessions(c.Request.Context(), sess.Token, id); err != nil {
		h.failAction(c, err, "/pacientes", "Erro ao criar sessões adicionais")
		return
	}
	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Sessões adicionais criadas com sucesso!"})
}

func (h *PatientsHandler) patientID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Paciente inválido"})
		return 0, false
	}
	return id, true
}
