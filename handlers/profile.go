// File: handlers/profile.go
package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"

	"cuidarmais/backend"
	"cuidarmais/middleware"
	"cuidarmais/models"
	"cuidarmais/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileAPI is the slice of the remote client the profile actions need.
type ProfileAPI interface {
	UploadPractitionerImage(ctx context.Context, token string, id int64, imagem string) error
	PractitionerMe(ctx context.Context, token string) (*models.Practitioner, error)
}

// ProfileHandler owns the practitioner profile actions, currently just the
// picture upload shown in the side menu.
type ProfileHandler struct {
	base
	API ProfileAPI
}

// NewProfileHandler builds the profile handler.
func NewProfileHandler(sessions *session.Store, api ProfileAPI) *ProfileHandler {
	return &ProfileHandler{base: base{Sessions: sessions}, API: api}
}

// UploadImageHandler stores a new profile picture and refreshes the cached
// practitioner record so the menu shows it immediately.
func (h *ProfileHandler) UploadImageHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	file, err := c.FormFile("imagem")
	if err != nil {
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Selecione uma imagem"})
		return
	}
	src, err := file.Open()
	if err != nil {
		getLogger(c).Warn("failed to open image upload", zap.Error(err))
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Erro ao ler a imagem"})
		return
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		getLogger(c).Warn("failed to read image upload", zap.Error(err))
		h.flashAndRedirect(c, "/pacientes", session.Flash{Erro: "Erro ao ler a imagem"})
		return
	}

	imagem := base64.StdEncoding.EncodeToString(raw)
	if err := h.API.UploadPractitionerImage(c.Request.Context(), sess.Token, sess.User.ID, imagem); err != nil {
		h.failAction(c, err, "/pacientes", "Erro ao enviar imagem")
		return
	}

	if me, err := h.API.PractitionerMe(c.Request.Context(), sess.Token); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.forceLogout(c)
			return
		}
		getLogger(c).Warn("failed to refresh practitioner profile", zap.Error(err))
	} else {
		sess.User = *me
		if err := h.Sessions.Save(c.Request.Context(), sess); err != nil {
			getLogger(c).Warn("failed to persist refreshed session", zap.Error(err))
		}
	}

	h.flashAndRedirect(c, "/pacientes", session.Flash{Sucesso: "Imagem atualizada com sucesso!"})
}
