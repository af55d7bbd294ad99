// File: models/schedule.go
package models

// ScheduleConfig is the weekly availability window of a practitioner, one per
// weekday. Slot boundaries derive from the window, pause and interval.
type ScheduleConfig struct {
	ID               int64  `json:"id,omitempty"`
	PsicologoID      int64  `json:"psicologoId"`
	DiaSemana        string `json:"diaSemana"`
	HorarioInicio    string `json:"horarioInicio"`
	HorarioFim       string `json:"horarioFim"`
	InicioPausa      string `json:"inicioPausa,omitempty"`
	VoltaPausa       string `json:"voltaPausa,omitempty"`
	IntervaloMinutos int    `json:"intervaloMinutos"`
	Ativo            bool   `json:"ativo"`
	NomeDiaSemana    string `json:"nomeDiaSemana,omitempty"`
}

// AvailableSlot is a bookable weekly time slot.
type AvailableSlot struct {
	ID                   int64  `json:"id"`
	ConfiguracaoAgendaID int64  `json:"configuracaoAgendaId,omitempty"`
	PsicologoID          int64  `json:"psicologoId"`
	DiaSemana            string `json:"diaSemana"`
	HoraInicio           string `json:"horaInicio"`
	HoraFim              string `json:"horaFim"`
	Ativo                bool   `json:"ativo"`
	Disponivel           bool   `json:"disponivel"`
	PacienteID           int64  `json:"pacienteId,omitempty"`
	NomePaciente         string `json:"nomePaciente,omitempty"`
}

// WeekdayOption feeds the weekday select of the patient form: only weekdays
// with an active schedule configuration are offered.
type WeekdayOption struct {
	Valor string `json:"valor"`
	Nome  string `json:"nome"`
}

// DeletionCheck is the answer of the pode-excluir endpoint.
type DeletionCheck struct {
	PodeExcluir bool   `json:"podeExcluir"`
	Motivo      string `json:"motivo,omitempty"`
}
