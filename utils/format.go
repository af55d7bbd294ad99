// File: utils/format.go
package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// weekdayNamesPT maps the API's English weekday codes to their pt-BR names.
var weekdayNamesPT = map[string]string{
	"MONDAY":    "Segunda-feira",
	"TUESDAY":   "Terça-feira",
	"WEDNESDAY": "Quarta-feira",
	"THURSDAY":  "Quinta-feira",
	"FRIDAY":    "Sexta-feira",
	"SATURDAY":  "Sábado",
	"SUNDAY":    "Domingo",
}

// WeekdayNamePT returns the pt-BR name for an English weekday code such as
// "MONDAY". Unknown codes are returned unchanged.
func WeekdayNamePT(dia string) string {
	if nome, ok := weekdayNamesPT[dia]; ok {
		return nome
	}
	return dia
}

// WeekdayNameFromDate returns the pt-BR weekday name for an ISO date (yyyy-mm-dd).
func WeekdayNameFromDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return WeekdayNamePT(strings.ToUpper(t.Weekday().String()))
}

// FormatTimeHM trims an API time value such as "14:00:00" down to "14:00".
func FormatTimeHM(hora string) string {
	if hora == "" {
		return ""
	}
	parts := strings.Split(hora, ":")
	if len(parts) < 2 {
		return hora
	}
	return parts[0] + ":" + parts[1]
}

// FormatDateBR renders an ISO date (yyyy-mm-dd) as dd/mm/yyyy.
func FormatDateBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// AgeFromBirthDate computes the age in full years at the reference time,
// decrementing when the birthday has not yet occurred this calendar year.
// Returns 0 when the date cannot be parsed.
func AgeFromBirthDate(dataNascimento string, now time.Time) int {
	nasc, err := time.Parse("2006-01-02", dataNascimento)
	if err != nil {
		return 0
	}
	idade := now.Year() - nasc.Year()
	if now.Month() < nasc.Month() || (now.Month() == nasc.Month() && now.Day() < nasc.Day()) {
		idade--
	}
	if idade < 0 {
		return 0
	}
	return idade
}

// Initials returns the first letter of the first and last name, upper-cased.
func Initials(nome, sobrenome string) string {
	var b strings.Builder
	for _, s := range []string{nome, sobrenome} {
		for _, r := range strings.TrimSpace(s) {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// ImageDataURL assembles a data URL from raw base64 content and a MIME type.
func ImageDataURL(imagemBase64, imagemTipo string) string {
	if imagemBase64 == "" || imagemTipo == "" {
		return ""
	}
	return fmt.Sprintf("data:%s;base64,%s", imagemTipo, imagemBase64)
}

// SniffImageDataURL turns an image payload of unknown framing into a data URL.
// SVGs are recognised by their base64 XML preamble, existing data URLs pass
// through untouched and everything else defaults to PNG.
func SniffImageDataURL(imagem string) string {
	if imagem == "" {
		return ""
	}
	trimmed := strings.TrimSpace(imagem)
	if strings.HasPrefix(trimmed, "PD94bWwgdmVyc2lvbj0iMS4wIi") || strings.Contains(imagem, "<svg") {
		return "data:image/svg+xml;base64," + imagem
	}
	if strings.HasPrefix(imagem, "data:image") {
		return imagem
	}
	return "data:image/png;base64," + imagem
}

// WhatsAppLink builds a wa.me link from a free-form phone number, prepending
// the Brazilian DDI when an 11-digit local number is given.
func WhatsAppLink(telefone string) string {
	if telefone == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range telefone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	numero := digits.String()
	if len(numero) == 11 && !strings.HasPrefix(numero, "55") {
		numero = "55" + numero
	}
	return "https://wa.me/" + numero
}
