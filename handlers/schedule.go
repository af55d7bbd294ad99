// File: handlers/schedule.go
package handlers

import (
	"errors"
	"strconv"

	"cuidarmais/backend"
	"cuidarmais/middleware"
	"cuidarmais/models"
	"cuidarmais/services/schedule"
	"cuidarmais/session"
	"cuidarmais/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the weekly schedule configuration page.
type ScheduleHandler struct {
	base
	Schedule schedule.Service
}

// NewScheduleHandler builds the schedule configuration handler.
func NewScheduleHandler(sessions *session.Store, svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{base: base{Sessions: sessions}, Schedule: svc}
}

// ScheduleConfigPageHandler lists the weekday configurations. A practitioner
// with no configurations yet sees the initialize call to action instead.
func (h *ScheduleHandler) ScheduleConfigPageHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	configs, err := h.Schedule.Configs(c.Request.Context(), sess.Token, sess.User.ID)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		h.render(c, "configuracoes.html", "Configurações da Agenda", gin.H{
			"Erro":    "Erro ao carregar configurações: " + backend.ErrorMessage(err),
			"Configs": []models.ScheduleConfig{},
		})
		return
	}

	for i := range configs {
		configs[i].NomeDiaSemana = utils.WeekdayNamePT(configs[i].DiaSemana)
	}

	h.render(c, "configuracoes.html", "Configurações da Agenda", gin.H{
		"Configs": configs,
		"Vazio":   len(configs) == 0,
	})
}

// SaveScheduleConfigHandler creates or updates one weekday's configuration
// from the inline form row.
func (h *ScheduleHandler) SaveScheduleConfigHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	id, _ := strconv.ParseInt(c.PostForm("id"), 10, 64)
	intervalo, err := strconv.Atoi(c.PostForm("intervaloMinutos"))
	if err != nil || intervalo < 1 {
		h.flashAndRedirect(c, "/configuracoes", session.Flash{Erro: "Intervalo entre sessões inválido"})
		return
	}

	cfg := models.ScheduleConfig{
		ID:               id,
		PsicologoID:      sess.User.ID,
		DiaSemana:        c.PostForm("diaSemana"),
		HorarioInicio:    c.PostForm("horarioInicio"),
		HorarioFim:       c.PostForm("horarioFim"),
		InicioPausa:      c.PostForm("inicioPausa"),
		VoltaPausa:       c.PostForm("voltaPausa"),
		IntervaloMinutos: intervalo,
		Ativo:            c.PostForm("ativo") == "on" || c.PostForm("ativo") == "true",
	}
	if cfg.DiaSemana == "" || cfg.HorarioInicio == "" || cfg.HorarioFim == "" {
		h.flashAndRedirect(c, "/configuracoes", session.Flash{Erro: "Dia, início e fim são obrigatórios"})
		return
	}

	if err := h.Schedule.Save(c.Request.Context(), sess.Token, cfg); err != nil {
		h.failAction(c, err, "/configuracoes", "Erro ao salvar configuração")
		return
	}
	h.flashAndRedirect(c, "/configuracoes", session.Flash{Sucesso: "Configuração salva com sucesso!"})
}

// InitializeScheduleHandler seeds the default weekday configurations for a
// practitioner starting from scratch.
func (h *ScheduleHandler) InitializeScheduleHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if err := h.Schedule.Initialize(c.Request.Context(), sess.Token, sess.User.ID); err != nil {
		h.failAction(c, err, "/configuracoes", "Erro ao inicializar configurações")
		return
	}
	h.flashAndRedirect(c, "/configuracoes", session.Flash{Sucesso: "Configurações inicializadas com sucesso!"})
}

// DeleteScheduleConfigHandler resets one weekday after the in-use check.
func (h *ScheduleHandler) DeleteScheduleConfigHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flashAndRedirect(c, "/configuracoes", session.Flash{Erro: "Configuração inválida"})
		return
	}

	if err := h.Schedule.Delete(c.Request.Context(), sess.Token, sess.User.ID, id); err != nil {
		if errors.Is(err, schedule.ErrConfigInUse) {
			h.flashAndRedirect(c, "/configuracoes", session.Flash{
				Erro: "Não é possível resetar esta configuração porque existem pacientes vinculados aos horários.",
			})
			return
		}
		h.failAction(c, err, "/configuracoes", "Erro ao resetar configuração")
		return
	}
	h.flashAndRedirect(c, "/configuracoes", session.Flash{Sucesso: "Configuração resetada com sucesso!"})
}
