package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cuidarmais/config"
	authsvc "cuidarmais/services/auth"
	"cuidarmais/session"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type fakeAuthService struct {
	sess *session.Session
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, email, senha string) (*session.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sess, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error { return nil }

func testStore(t *testing.T) *session.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewStore(client, time.Hour)
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.SessionCookieName = "cuidarmais_sid"
	config.AppConfig.SessionTTL = time.Hour

	r := gin.New()
	tmpl := template.Must(template.New("login.html").Parse(
		`login {{with .Erro}}erro={{.}}{{end}} {{with .Email}}email={{.}}{{end}}`))
	r.SetHTMLTemplate(tmpl)
	return r
}

func TestLoginSubmitPlantsCookieAndRedirects(t *testing.T) {
	store := testStore(t)
	sess := &session.Session{ID: "sid-1", Token: "tok"}
	h := NewAuthHandler(store, &fakeAuthService{sess: sess})

	r := testRouter(t)
	r.POST("/login", h.LoginSubmitHandler)

	form := url.Values{"email": {"paula@exemplo.com"}, "senha": {"segredo"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/pacientes" {
		t.Fatalf("Location = %q", loc)
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "cuidarmais_sid=sid-1") {
		t.Fatalf("Set-Cookie = %q, want session id", cookie)
	}
}

func TestLoginSubmitRejectsEmptyFields(t *testing.T) {
	h := NewAuthHandler(testStore(t), &fakeAuthService{})

	r := testRouter(t)
	r.POST("/login", h.LoginSubmitHandler)

	form := url.Values{"email": {"  "}, "senha": {""}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Informe e-mail e senha") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestLoginSubmitShowsRejectionMessage(t *testing.T) {
	failing := &fakeAuthService{err: errors.New("login rejeitado")}
	h := NewAuthHandler(testStore(t), failing)

	r := testRouter(t)
	r.POST("/login", h.LoginSubmitHandler)

	form := url.Values{"email": {"paula@exemplo.com"}, "senha": {"errada"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), authsvc.LoginErrorMessage(failing.err)) {
		t.Fatalf("body = %q", w.Body.String())
	}
	// Typed email survives the failed attempt.
	if !strings.Contains(w.Body.String(), "paula@exemplo.com") {
		t.Fatalf("body = %q, want email preserved", w.Body.String())
	}
}

func TestLoginPageSkipsWhenSessionExists(t *testing.T) {
	store := testStore(t)
	sess := &session.Session{Token: "tok"}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	h := NewAuthHandler(store, &fakeAuthService{})

	r := testRouter(t)
	r.GET("/login", h.LoginPageHandler)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: "cuidarmais_sid", Value: sess.ID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/pacientes" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestLogoutClearsSessionAndCookie(t *testing.T) {
	store := testStore(t)
	sess := &session.Session{Token: "tok"}
	if err := store.Save(context.Background(), sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	svc := &authsvc.DefaultService{Sessions: store}
	h := NewAuthHandler(store, svc)

	r := testRouter(t)
	r.GET("/logout", h.LogoutHandler)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "cuidarmais_sid", Value: sess.ID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if _, err := store.Get(context.Background(), sess.ID); err != session.ErrNotFound {
		t.Fatalf("session should be gone, got %v", err)
	}
}
