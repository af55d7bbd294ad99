// File: models/patient.go
package models

// Appointment statuses as reported by the API.
const (
	AppointmentScheduled = "AGENDADO"
	AppointmentCompleted = "REALIZADO"
	AppointmentCancelled = "CANCELADO"
)

// Appointment is one recurring slot occurrence attached to a patient.
type Appointment struct {
	ID         int64  `json:"id"`
	Data       string `json:"data"`
	HoraInicio string `json:"horaInicio"`
	HoraFim    string `json:"horaFim"`
	Status     string `json:"status"`
}

// Patient mirrors the API's patient resource. Ativo is a pointer because the
// API omits it for legacy records, and an absent value counts as active.
type Patient struct {
	ID                  int64  `json:"id"`
	Nome                string `json:"nome"`
	Sobrenome           string `json:"sobrenome"`
	Sexo                string `json:"sexo"`
	DataNascimento      string `json:"dataNascimento"`
	Email               string `json:"email"`
	Telefone            string `json:"telefone"`
	ImagemBase64        string `json:"imagemBase64,omitempty"`
	ImagemTipo          string `json:"imagemTipo,omitempty"`
	PsicologoID         int64  `json:"psicologoId,omitempty"`
	HorarioDisponivelID int64  `json:"horarioDisponivelId,omitempty"`
	SessoesPorPacote    int    `json:"sessoesPorPacote,omitempty"`
	Ativo               *bool  `json:"ativo,omitempty"`
	DiaSemana           string `json:"diaSemana,omitempty"`
	HorarioInicio       string `json:"horarioInicio,omitempty"`
	HorarioFim          string `json:"horarioFim,omitempty"`
	SerieID             string `json:"serieId,omitempty"`

	// Derived locally after the per-patient appointment fetch settles.
	Agendamentos      []Appointment `json:"agendamentos,omitempty"`
	SessoesRestantes  int           `json:"sessoesRestantes"`
	SessoesRealizadas int           `json:"sessoesRealizadas"`
}

// IsActive treats a missing ativo flag as active.
func (p *Patient) IsActive() bool {
	return p.Ativo == nil || *p.Ativo
}

// NomeCompleto joins first and last name.
func (p *Patient) NomeCompleto() string {
	if p.Nome != "" && p.Sobrenome != "" {
		return p.Nome + " " + p.Sobrenome
	}
	return p.Nome
}

// PatientPayload is the write shape for creating or updating a patient.
// The Antigo fields carry the previous weekly slot so the API can move the
// remaining appointments of the series.
type PatientPayload struct {
	ID                        int64  `json:"id,omitempty"`
	Nome                      string `json:"nome"`
	Sobrenome                 string `json:"sobrenome"`
	Sexo                      string `json:"sexo"`
	DataNascimento            string `json:"dataNascimento"`
	Email                     string `json:"email,omitempty"`
	Telefone                  string `json:"telefone,omitempty"`
	ImagemBase64              string `json:"imagemBase64,omitempty"`
	ImagemTipo                string `json:"imagemTipo,omitempty"`
	PsicologoID               int64  `json:"psicologoId"`
	TotalSessoes              int    `json:"totalSessoes"`
	Ativo                     bool   `json:"ativo"`
	DiaSemana                 string `json:"diaSemana,omitempty"`
	HorarioDisponivelID       string `json:"horarioDisponivelId,omitempty"`
	DataInicio                string `json:"dataInicio,omitempty"`
	DiaSemanaAntigo           string `json:"diaSemanaAntigo,omitempty"`
	HorarioDisponivelIDAntigo string `json:"horarioDisponivelIdAntigo,omitempty"`
	SerieID                   string `json:"serieId,omitempty"`
}
