package routes

import (
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTemplatesParseWithFuncs(t *testing.T) {
	if _, err := template.New("").Funcs(TemplateFuncs()).ParseGlob(filepath.Join("..", "templates", "*.html")); err != nil {
		t.Fatalf("ParseGlob: %v", err)
	}
}

// Destructive row actions must ask for confirmation before the POST leaves the
// browser.
func TestDestructiveActionsAskForConfirmation(t *testing.T) {
	casos := []struct {
		arquivo string
		acao    string
	}{
		{"pacientes.html", "/inativar"},
		{"pacientes.html", "/reativar"},
		{"pacientes.html", "/sessoes-adicionais"},
		{"agenda.html", "/cancelar"},
	}
	for _, tc := range casos {
		raw, err := os.ReadFile(filepath.Join("..", "templates", tc.arquivo))
		if err != nil {
			t.Fatalf("ReadFile %s: %v", tc.arquivo, err)
		}
		body := string(raw)
		idx := strings.Index(body, tc.acao)
		if idx < 0 {
			t.Fatalf("%s: action %s not found", tc.arquivo, tc.acao)
		}
		// The form tag opens before the action URL and must carry the
		// confirmation handler before it closes.
		inicio := strings.LastIndex(body[:idx], "<form")
		fim := strings.Index(body[idx:], ">")
		if inicio < 0 || fim < 0 {
			t.Fatalf("%s: malformed form around %s", tc.arquivo, tc.acao)
		}
		tag := body[inicio : idx+fim]
		if !strings.Contains(tag, "onsubmit") || !strings.Contains(tag, "confirm(") {
			t.Fatalf("%s: form %s lacks a confirmation step, tag = %q", tc.arquivo, tc.acao, tag)
		}
		if !strings.Contains(tag, "Tem certeza") {
			t.Fatalf("%s: form %s confirmation must explain the action, tag = %q", tc.arquivo, tc.acao, tag)
		}
	}
}
