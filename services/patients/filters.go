// File: services/patients/filters.go
package patients

import (
	"strings"

	"cuidarmais/models"
)

// StatusFilter selects which activation states the list shows.
type StatusFilter string

const (
	StatusActive   StatusFilter = "ativos"
	StatusInactive StatusFilter = "inativos"
	StatusAll      StatusFilter = "todos"
)

// ParseStatusFilter maps a query value onto a filter, defaulting to active.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case StatusInactive, StatusAll:
		return StatusFilter(s)
	default:
		return StatusActive
	}
}

// ApplyFilters is a pure function of the sorted collection, the status filter
// and the search term. It never mutates or reorders its input; calling it
// twice with the same inputs yields the same result.
func ApplyFilters(pacientes []models.Patient, status StatusFilter, termoBusca string) []models.Patient {
	filtrados := make([]models.Patient, 0, len(pacientes))

	termo := strings.TrimSpace(termoBusca)
	termoLower := strings.ToLower(termo)

	for _, p := range pacientes {
		switch status {
		case StatusActive:
			if !p.IsActive() {
				continue
			}
		case StatusInactive:
			if p.IsActive() {
				continue
			}
		}

		if termo != "" && !matchesSearch(&p, termo, termoLower) {
			continue
		}
		filtrados = append(filtrados, p)
	}
	return filtrados
}

// matchesSearch checks the term against name and email case-insensitively and
// against the phone as-is, since phone numbers are digits.
func matchesSearch(p *models.Patient, termo, termoLower string) bool {
	return strings.Contains(strings.ToLower(p.Nome), termoLower) ||
		strings.Contains(strings.ToLower(p.Sobrenome), termoLower) ||
		strings.Contains(strings.ToLower(p.Email), termoLower) ||
		(p.Telefone != "" && strings.Contains(p.Telefone, termo))
}
