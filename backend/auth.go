// File: backend/auth.go
package backend

import (
	"context"
	"fmt"

	"cuidarmais/models"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, senha string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	req := models.LoginRequest{Email: email, Senha: senha}
	if err := c.post(ctx, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the signed-in account via /usuarios/me.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.Practitioner, error) {
	var out models.Practitioner
	if err := c.get(ctx, "/usuarios/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PractitionerMe fetches the practitioner profile, including the optional
// embedded profile image as a data URL.
func (c *Client) PractitionerMe(ctx context.Context, token string) (*models.Practitioner, error) {
	var out models.Practitioner
	if err := c.get(ctx, "/psicologo/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPractitionerImage stores a base64 profile image.
func (c *Client) UploadPractitionerImage(ctx context.Context, token string, id int64, imagem string) error {
	path := fmt.Sprintf("/psicologo/%d/imagem-base64", id)
	return c.post(ctx, path, token, models.ImagePayload{Imagem: imagem}, nil)
}

// PractitionerImage fetches the stored profile image as a data URL.
func (c *Client) PractitionerImage(ctx context.Context, token string, id int64) (string, error) {
	var out models.ImagePayload
	if err := c.get(ctx, fmt.Sprintf("/psicologo/%d/imagem", id), token, &out); err != nil {
		return "", err
	}
	return out.Imagem, nil
}
