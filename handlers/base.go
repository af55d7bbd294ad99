// File: handlers/base.go
package handlers

import (
	"errors"
	"net/http"

	"cuidarmais/backend"
	"cuidarmais/config"
	"cuidarmais/middleware"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// base carries the pieces every page handler shares: the session store for
// flash messages and the forced-logout path taken on a 401 from the API.
type base struct {
	Sessions *session.Store
}

// render writes an HTML page, merging the signed-in practitioner, the page
// title and any pending flash banners into the template data.
func (b base) render(c *gin.Context, tmpl, titulo string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Titulo"] = titulo
	if sess := middleware.SessionFrom(c); sess != nil {
		data["Usuario"] = sess.User
		flash := b.Sessions.PopFlash(c.Request.Context(), sess.ID)
		if _, ok := data["Sucesso"]; !ok && flash.Sucesso != "" {
			data["Sucesso"] = flash.Sucesso
		}
		if _, ok := data["Erro"]; !ok && flash.Erro != "" {
			data["Erro"] = flash.Erro
		}
	}
	c.HTML(http.StatusOK, tmpl, data)
}

// flashAndRedirect stores one-shot banners and sends the browser elsewhere.
func (b base) flashAndRedirect(c *gin.Context, target string, f session.Flash) {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := b.Sessions.SetFlash(c.Request.Context(), sess.ID, f); err != nil {
			getLogger(c).Warn("failed to store flash message", zap.Error(err))
		}
	}
	c.Redirect(http.StatusSeeOther, target)
}

// forceLogout discards the session and routes to the login page. This is the
// mandatory reaction to a 401; a 403 never lands here.
func (b base) forceLogout(c *gin.Context) {
	if sess := middleware.SessionFrom(c); sess != nil {
		if err := b.Sessions.Clear(c.Request.Context(), sess.ID); err != nil {
			getLogger(c).Warn("failed to clear session", zap.Error(err))
		}
	}
	c.SetCookie(config.AppConfig.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// failAction resolves an action error: forced logout on 401, otherwise an
// error banner on the target page.
func (b base) failAction(c *gin.Context, err error, target, prefix string) {
	if errors.Is(err, backend.ErrUnauthorized) {
		b.forceLogout(c)
		return
	}
	getLogger(c).Error("action failed", zap.String("target", target), zap.Error(err))
	b.flashAndRedirect(c, target, session.Flash{Erro: prefix + ": " + backend.ErrorMessage(err)})
}
