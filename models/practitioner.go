// File: models/practitioner.go
package models

// Practitioner is the signed-in psychologist profile as returned by
// /usuarios/me and /psicologo/me.
type Practitioner struct {
	ID            int64    `json:"id"`
	Nome          string   `json:"nome"`
	Email         string   `json:"email"`
	CRP           string   `json:"crp,omitempty"`
	ImagemDataURL string   `json:"imagemDataUrl,omitempty"`
	Authorities   []string `json:"authorities,omitempty"`
}

// HasAuthority reports whether the practitioner carries the given role.
func (p *Practitioner) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// LoginRequest is the credential payload of POST /auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// TokenResponse is the answer of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ImagePayload carries a base64 profile image upload.
type ImagePayload struct {
	Imagem string `json:"imagem"`
}
