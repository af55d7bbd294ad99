// File: handlers/patient_form.go
package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"cuidarmais/backend"
	"cuidarmais/middleware"
	"cuidarmais/models"
	"cuidarmais/services/schedule"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormAPI is the slice of the remote client the patient form needs.
type FormAPI interface {
	Patient(ctx context.Context, token string, id int64) (*models.Patient, error)
	CreatePatient(ctx context.Context, token string, p models.PatientPayload) error
	UpdatePatient(ctx context.Context, token string, id int64, p models.PatientPayload) error
	CurrentSlot(ctx context.Context, token string, id int64) (*models.AvailableSlot, error)
}

// PatientFormHandler serves patient registration and editing. The selected
// weekly slot lives in the form state alone and the occupied slot is merged
// into the options server-side, so the rendered select is always consistent
// with the model.
type PatientFormHandler struct {
	base
	API      FormAPI
	Schedule schedule.Service
}

// NewPatientFormHandler builds the patient form handler.
func NewPatientFormHandler(sessions *session.Store, api FormAPI, sched schedule.Service) *PatientFormHandler {
	return &PatientFormHandler{base: base{Sessions: sessions}, API: api, Schedule: sched}
}

// patientForm is the bound state of the registration/edit form.
type patientForm struct {
	Nome           string
	Sobrenome      string
	Sexo           string
	DataNascimento string
	Email          string
	Telefone       string
	ImagemBase64   string
	ImagemTipo     string
	DiaSemana      string
	HorarioID      string
	TotalSessoes   int

	// Edit-mode tracking of the previous weekly slot.
	DiaSemanaAntigo string
	HorarioIDAntigo string
	SerieID         string
}

func bindPatientForm(c *gin.Context) patientForm {
	total, _ := strconv.Atoi(c.PostForm("totalSessoes"))
	f := patientForm{
		Nome:            c.PostForm("nome"),
		Sobrenome:       c.PostForm("sobrenome"),
		Sexo:            c.PostForm("sexo"),
		DataNascimento:  c.PostForm("dataNascimento"),
		Email:           c.PostForm("email"),
		Telefone:        c.PostForm("telefone"),
		DiaSemana:       c.PostForm("diaSemana"),
		HorarioID:       c.PostForm("horarioId"),
		TotalSessoes:    total,
		DiaSemanaAntigo: c.PostForm("diaSemanaAntigo"),
		HorarioIDAntigo: c.PostForm("horarioIdAntigo"),
		SerieID:         c.PostForm("serieId"),
	}
	f.ImagemBase64, f.ImagemTipo = readImageUpload(c)
	return f
}

// readImageUpload converts an optional multipart image into raw base64 plus
// its MIME type, matching the storage shape of the API.
func readImageUpload(c *gin.Context) (string, string) {
	file, err := c.FormFile("imagem")
	if err != nil {
		return "", ""
	}
	src, err := file.Open()
	if err != nil {
		getLogger(c).Warn("failed to open image upload", zap.Error(err))
		return "", ""
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		getLogger(c).Warn("failed to read image upload", zap.Error(err))
		return "", ""
	}
	return base64.StdEncoding.EncodeToString(data), file.Header.Get("Content-Type")
}

// validate returns the first field-specific problem, checked before any
// request leaves the process. Slot fields are only mandatory on creation.
func (f *patientForm) validate(edicao bool) string {
	switch {
	case f.Nome == "":
		return "Nome é obrigatório"
	case f.Sobrenome == "":
		return "Sobrenome é obrigatório"
	case f.Sexo == "":
		return "Sexo é obrigatório"
	case f.DataNascimento == "":
		return "Data de nascimento é obrigatória"
	}
	if !edicao {
		switch {
		case f.DiaSemana == "":
			return "Dia de atendimento é obrigatório"
		case f.HorarioID == "":
			return "Horário é obrigatório"
		case f.TotalSessoes < 1:
			return "Total de sessões deve ser maior que zero"
		}
	}
	return ""
}

// NewPatientPageHandler renders the empty registration form.
func (h *PatientFormHandler) NewPatientPageHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	form := patientForm{TotalSessoes: 1, DiaSemana: c.Query("diaSemana")}
	h.renderForm(c, sess, &form, false, 0, nil, "")
}

// CreatePatientHandler validates and submits a new patient.
func (h *PatientFormHandler) CreatePatientHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	form := bindPatientForm(c)

	if msg := form.validate(false); msg != "" {
		h.renderForm(c, sess, &form, false, 0, nil, msg)
		return
	}

	payload := form.payload(sess.User.ID, false)
	payload.DataInicio = time.Now().Format("2006-01-02")
	if err := h.API.CreatePatient(c.Request.Context(), sess.Token, payload); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		h.renderForm(c, sess, &form, false, 0, nil, "Erro ao cadastrar paciente: "+backend.ErrorMessage(err))
		return
	}
	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Paciente cadastrado com sucesso!"})
}

// EditPatientPageHandler loads a patient into the form. The slot currently
// occupied by the patient is fetched from the API and merged into the weekday
// options so it stays selectable even when fully booked.
func (h *PatientFormHandler) EditPatientPageHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Paciente inválido"})
		return
	}

	paciente, err := h.API.Patient(c.Request.Context(), sess.Token, id)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Erro ao carregar dados do paciente: " + backend.ErrorMessage(err)})
		return
	}

	form := patientForm{
		Nome:           paciente.Nome,
		Sobrenome:      paciente.Sobrenome,
		Sexo:           paciente.Sexo,
		DataNascimento: paciente.DataNascimento,
		Email:          paciente.Email,
		Telefone:       paciente.Telefone,
		DiaSemana:      paciente.DiaSemana,
		TotalSessoes:   paciente.SessoesPorPacote,
		SerieID:        paciente.SerieID,
	}
	if override := c.Query("diaSemana"); override != "" {
		form.DiaSemana = override
	}
	form.DiaSemanaAntigo = paciente.DiaSemana

	atual, err := h.API.CurrentSlot(c.Request.Context(), sess.Token, id)
	if err != nil {
		getLogger(c).Warn("failed to load current slot", zap.Int64("pacienteId", id), zap.Error(err))
		atual = nil
		if paciente.HorarioDisponivelID != 0 {
			form.HorarioIDAntigo = strconv.FormatInt(paciente.HorarioDisponivelID, 10)
			form.HorarioID = form.HorarioIDAntigo
		}
	} else if atual != nil {
		form.HorarioIDAntigo = strconv.FormatInt(atual.ID, 10)
		form.HorarioID = form.HorarioIDAntigo
	}

	h.renderForm(c, sess, &form, true, id, atual, "")
}

// UpdatePatientHandler validates and submits an edited patient, carrying the
// previous weekly slot so the API can move the remaining series.
func (h *PatientFormHandler) UpdatePatientHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Paciente inválido"})
		return
	}
	form := bindPatientForm(c)

	if msg := form.validate(true); msg != "" {
		h.renderForm(c, sess, &form, true, id, nil, msg)
		return
	}

	payload := form.payload(sess.User.ID, true)
	if err := h.API.UpdatePatient(c.Request.Context(), sess.Token, id, payload); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		h.renderForm(c, sess, &form, true, id, nil, "Erro ao atualizar paciente: "+backend.ErrorMessage(err))
		return
	}
	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Paciente atualizado com sucesso!"})
}

// SlotOptionsHandler answers the weekday select change with the slots of the
// chosen weekday as JSON, including the patient's current slot when editing.
func (h *PatientFormHandler) SlotOptionsHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	diaSemana := c.Query("diaSemana")
	if diaSemana == "" {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "diaSemana é obrigatório"})
		return
	}

	opts, err := h.Schedule.SlotOptions(c.Request.Context(), sess.Token, sess.User.ID, diaSemana)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"erro": backend.ErrorMessage(err)})
		return
	}

	if pacienteID, err := strconv.ParseInt(c.Query("pacienteId"), 10, 64); err == nil && pacienteID > 0 {
		atual, err := h.API.CurrentSlot(c.Request.Context(), sess.Token, pacienteID)
		if err != nil {
			getLogger(c).Warn("failed to load current slot", zap.Int64("pacienteId", pacienteID), zap.Error(err))
		} else if atual.DiaSemana == "" || atual.DiaSemana == diaSemana {
			opts = schedule.MergeCurrentSlot(opts, atual)
		}
	}

	c.JSON(http.StatusOK, opts)
}

func (f *patientForm) payload(psicologoID int64, edicao bool) models.PatientPayload {
	p := models.PatientPayload{
		Nome:                f.Nome,
		Sobrenome:           f.Sobrenome,
		Sexo:                f.Sexo,
		DataNascimento:      f.DataNascimento,
		Email:               f.Email,
		Telefone:            f.Telefone,
		ImagemBase64:        f.ImagemBase64,
		ImagemTipo:          f.ImagemTipo,
		PsicologoID:         psicologoID,
		TotalSessoes:        f.TotalSessoes,
		Ativo:               true,
		DiaSemana:           f.DiaSemana,
		HorarioDisponivelID: f.HorarioID,
	}
	if edicao {
		p.DiaSemanaAntigo = f.DiaSemanaAntigo
		p.HorarioDisponivelIDAntigo = f.HorarioIDAntigo
		p.SerieID = f.SerieID
	}
	return p
}

// renderForm renders the shared create/edit template with the weekday and
// slot selects populated. atual is the slot the patient currently occupies,
// merged into the options with its real times; when the caller has not fetched
// it yet it is looked up here.
func (h *PatientFormHandler) renderForm(c *gin.Context, sess *session.Session, form *patientForm, edicao bool, pacienteID int64, atual *models.AvailableSlot, erro string) {
	ctx := c.Request.Context()

	dias, err := h.Schedule.ActiveWeekdays(ctx, sess.Token, sess.User.ID)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		if erro == "" {
			erro = "Erro ao carregar dias da semana: " + backend.ErrorMessage(err)
		}
	}

	var horarios []schedule.SlotOption
	if form.DiaSemana != "" {
		horarios, err = h.Schedule.SlotOptions(ctx, sess.Token, sess.User.ID, form.DiaSemana)
		if err != nil {
			if errors.Is(err, backend.ErrUnauthorized) {
				h.forceLogout(c)
				return
			}
			if erro == "" {
				erro = "Erro ao carregar horários: " + backend.ErrorMessage(err)
			}
		}
		if edicao && form.HorarioIDAntigo != "" {
			if atual == nil && pacienteID > 0 {
				slot, err := h.API.CurrentSlot(ctx, sess.Token, pacienteID)
				if err != nil {
					getLogger(c).Warn("failed to load current slot", zap.Int64("pacienteId", pacienteID), zap.Error(err))
				} else {
					atual = slot
				}
			}
			if atual != nil && (atual.DiaSemana == "" || atual.DiaSemana == form.DiaSemana) {
				horarios = schedule.MergeCurrentSlot(horarios, atual)
			} else if atual == nil {
				if slotID, err := strconv.ParseInt(form.HorarioIDAntigo, 10, 64); err == nil {
					horarios = schedule.MergeCurrentSlot(horarios, &models.AvailableSlot{ID: slotID})
				}
			}
		}
	}

	titulo := "Cadastrar Paciente"
	if edicao {
		titulo = "Editar Paciente"
	}
	data := gin.H{
		"Form":       form,
		"Edicao":     edicao,
		"PacienteID": pacienteID,
		"Dias":       dias,
		"Horarios":   horarios,
	}
	if erro != "" {
		data["Erro"] = erro
	}
	h.render(c, "paciente_form.html", titulo, data)
}
