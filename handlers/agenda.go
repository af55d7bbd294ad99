// File: handlers/agenda.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cuidarmais/backend"
	"cuidarmais/middleware"
	"cuidarmais/models"
	"cuidarmais/services/agenda"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgendaHandler serves the month calendar plus the selected day's sessions.
type AgendaHandler struct {
	base
	Agenda agenda.Service
	Policy agenda.NavigationPolicy
	Now    func() time.Time
}

// NewAgendaHandler builds the agenda handler with a real clock.
func NewAgendaHandler(sessions *session.Store, svc agenda.Service, policy agenda.NavigationPolicy) *AgendaHandler {
	return &AgendaHandler{base: base{Sessions: sessions}, Agenda: svc, Policy: policy, Now: time.Now}
}

// AgendaPageHandler renders the calendar for the requested month. Opening the
// page without parameters lands on the current month with today selected;
// navigating to another month follows the configured selection policy.
func (h *AgendaHandler) AgendaPageHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	now := h.Now()

	ano, errAno := strconv.Atoi(c.Query("ano"))
	mes, errMes := strconv.Atoi(c.Query("mes"))
	navegou := errAno == nil && errMes == nil && mes >= 1 && mes <= 12
	if !navegou {
		ano, mes = now.Year(), int(now.Month())
	}

	view := agenda.NewMonthViewAt(ano, time.Month(mes),
		agenda.WithNow(h.Now), agenda.WithPolicy(h.Policy))

	if dia, err := strconv.Atoi(c.Query("dia")); err == nil && dia >= 1 && dia <= view.DaysInMonth() {
		view.SelectDay(dia)
	} else if !navegou {
		view.SelectDay(now.Day())
	} else if h.Policy == agenda.KeepTodayInCurrentMonth &&
		ano == now.Year() && time.Month(mes) == now.Month() {
		view.SelectDay(now.Day())
	}

	data := gin.H{
		"Ano":         view.Year(),
		"Mes":         int(view.Month()),
		"NomeMes":     view.MonthNamePT(),
		"DiasGrade":   view.Cells(),
		"Cabecalho":   agenda.WeekDaysPT,
		"MesAnterior": monthLink(view.Year(), int(view.Month()), -1),
		"MesSeguinte": monthLink(view.Year(), int(view.Month()), +1),
	}

	if dataSelecionada, ok := view.SelectedDate(); ok {
		data["Dia"] = view.SelectedDay()
		data["DataSelecionada"] = dataSelecionada.Format("2006-01-02")

		sessoes, err := h.Agenda.DaySessions(c.Request.Context(), sess.Token, sess.User.ID, dataSelecionada)
		if err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				h.forceLogout(c)
				return
			}
			getLogger(c).Error("failed to load day sessions",
				zap.String("data", dataSelecionada.Format("2006-01-02")), zap.Error(err))
			data["Erro"] = "Erro ao carregar sessões: " + backend.ErrorMessage(err)
			data["Sessoes"] = []models.TherapySession{}
		} else {
			data["Sessoes"] = sessoes
		}
	}

	h.render(c, "agenda.html", "Agenda", data)
}

// monthLink builds the query string for the adjacent month, letting time.Date
// normalize the year rollover.
func monthLink(ano, mes, delta int) string {
	t := time.Date(ano, time.Month(mes+delta), 1, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("/agenda?ano=%d&mes=%d", t.Year(), int(t.Month()))
}

// ConfirmSessionHandler marks a session as held and returns to the same day.
func (h *AgendaHandler) ConfirmSessionHandler(c *gin.Context) {
	h.sessionAction(c, h.Agenda.Confirm, "Sessão confirmada com sucesso!", "Erro ao confirmar sessão")
}

// MissedSessionHandler records a no-show and returns to the same day.
func (h *AgendaHandler) MissedSessionHandler(c *gin.Context) {
	h.sessionAction(c, h.Agenda.MarkMissed, "Falta registrada com sucesso!", "Erro ao registrar falta")
}

// CancelSessionHandler cancels a session and returns to the same day.
func (h *AgendaHandler) CancelSessionHandler(c *gin.Context) {
	h.sessionAction(c, h.Agenda.Cancel, "Sessão cancelada com sucesso!", "Erro ao cancelar sessão")
}

func (h *AgendaHandler) sessionAction(c *gin.Context, act func(ctx context.Context, token string, id int64) error, sucesso, prefixo string) {
	sess := middleware.SessionFrom(c)
	target := agendaTarget(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flashAndRedirect(c, target, session.Flash{Erro: "Sessão inválida"})
		return
	}

	if err := act(c.Request.Context(), sess.Token, id); err != nil {
		h.failAction(c, err, target, prefixo)
		return
	}
	h.flashAndRedirect(c, target, session.Flash{Sucesso: sucesso})
}

// agendaTarget rebuilds the agenda URL for the day the action came from, so
// the reload after an action shows the same date.
func agendaTarget(c *gin.Context) string {
	ano := c.PostForm("ano")
	mes := c.PostForm("mes")
	dia := c.PostForm("dia")
	if ano == "" || mes == "" || dia == "" {
		return "/agenda"
	}
	return fmt.Sprintf("/agenda?ano=%s&mes=%s&dia=%s", ano, mes, dia)
}
