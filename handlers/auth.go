// File: handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"cuidarmais/config"
	authsvc "cuidarmais/services/auth"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the login page and runs the session lifecycle.
type AuthHandler struct {
	base
	Service authsvc.Service
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(sessions *session.Store, svc authsvc.Service) *AuthHandler {
	return &AuthHandler{base: base{Sessions: sessions}, Service: svc}
}

// LoginPageHandler renders the login form, skipping straight to the patient
// list when a session already exists.
func (h *AuthHandler) LoginPageHandler(c *gin.Context) {
	if sid, err := c.Cookie(config.AppConfig.SessionCookieName); err == nil && sid != "" {
		if sess, err := h.Sessions.Get(c.Request.Context(), sid); err == nil && sess.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/pacientes")
			return
		}
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Titulo": "Login"})
}

// LoginSubmitHandler validates the credentials form, runs the login flow and
// plants the session cookie.
func (h *AuthHandler) LoginSubmitHandler(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	senha := c.PostForm("senha")

	if email == "" || senha == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Titulo": "Login",
			"Erro":   "Informe e-mail e senha",
			"Email":  email,
		})
		return
	}

	sess, err := h.Service.Login(c.Request.Context(), email, senha)
	if err != nil {
		getLogger(c).Warn("login failed", zap.String("email", email), zap.Error(err))
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Titulo": "Login",
			"Erro":   authsvc.LoginErrorMessage(err),
			"Email":  email,
		})
		return
	}

	maxAge := int(config.AppConfig.SessionTTL.Seconds())
	c.SetCookie(config.AppConfig.SessionCookieName, sess.ID, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/pacientes")
}

// LogoutHandler clears the session and returns to the login page.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if sid, err := c.Cookie(config.AppConfig.SessionCookieName); err == nil && sid != "" {
		if err := h.Service.Logout(c.Request.Context(), sid); err != nil {
			getLogger(c).Warn("logout failed", zap.Error(err))
		}
	}
	c.SetCookie(config.AppConfig.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
