// File: models/session.go
package models

// Therapy session statuses as reported by the API.
const (
	SessionScheduled = "AGENDADA"
	SessionCompleted = "REALIZADA"
	SessionCancelled = "CANCELADA"
)

// TherapySession is one entry of a practitioner's day agenda, denormalized by
// the API with the patient's contact fields.
type TherapySession struct {
	ID                  int64  `json:"id"`
	PacienteID          int64  `json:"pacienteId"`
	NomePaciente        string `json:"nomePaciente"`
	PacienteSobrenome   string `json:"pacienteSobrenome,omitempty"`
	PacienteEmail       string `json:"pacienteEmail,omitempty"`
	PacienteTelefone    string `json:"pacienteTelefone,omitempty"`
	PacienteImagem      string `json:"pacienteImagem,omitempty"`
	PsicologoID         int64  `json:"psicologoId"`
	HorarioDisponivelID int64  `json:"horarioDisponivelId,omitempty"`
	NumeroSessao        int    `json:"numeroSessao"`
	DataSessao          string `json:"dataSessao"`
	HoraInicio          string `json:"horaInicio"`
	HoraFim             string `json:"horaFim"`
	Status              string `json:"status"`
	Observacoes         string `json:"observacoes,omitempty"`
	Ativo               *bool  `json:"ativo,omitempty"`
}
