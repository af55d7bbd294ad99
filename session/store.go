// File: session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cuidarmais/models"
	"cuidarmais/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionPrefix = "session:"
	flashPrefix   = "flash:"
	flashTTL      = 2 * time.Minute
)

// ErrNotFound is returned when no session exists for the given ID.
var ErrNotFound = errors.New("session not found")

// ErrTokenExpired is returned by Save when the bearer token's exp claim is
// already in the past.
var ErrTokenExpired = errors.New("token already expired")

// Session holds the API bearer token and the cached practitioner record for
// one browser. At most one is active per browser profile.
type Session struct {
	ID        string              `json:"id"`
	Token     string              `json:"token"`
	User      models.Practitioner `json:"usuario"`
	CreatedAt time.Time           `json:"createdAt"`
}

// IsAuthenticated reports whether the session carries a bearer token.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Token != ""
}

// Flash carries one-shot banner messages across a redirect.
type Flash struct {
	Sucesso string `json:"sucesso,omitempty"`
	Erro    string `json:"erro,omitempty"`
}

// Store persists sessions in Redis with an explicit lifecycle: Save on login,
// Get to restore, Clear on logout or a 401 from the API.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore builds a session store. ttl caps the session lifetime; a shorter
// token expiry wins over it.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save writes the session, assigning a fresh ID when it has none. The entry
// expires at the earlier of the configured TTL and the token's exp claim; a
// token already past its exp is refused with ErrTokenExpired.
func (st *Store) Save(ctx context.Context, sess *Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now()
	}
	ttl := st.ttl
	if exp, err := utils.TokenExpiry(sess.Token); err == nil {
		until := time.Until(exp)
		if until <= 0 {
			return ErrTokenExpired
		}
		if until < ttl {
			ttl = until
		}
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := st.client.Set(ctx, sessionPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get restores the session for the given ID.
func (st *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	data, err := st.client.Get(ctx, sessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Clear removes the session and any pending flash messages.
func (st *Store) Clear(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return st.client.Del(ctx, sessionPrefix+id, flashPrefix+id).Err()
}

// SetFlash stores one-shot banner messages for the session.
func (st *Store) SetFlash(ctx context.Context, id string, f Flash) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}
	return st.client.Set(ctx, flashPrefix+id, data, flashTTL).Err()
}

// PopFlash returns and removes pending banner messages. A missing entry
// yields an empty Flash.
func (st *Store) PopFlash(ctx context.Context, id string) Flash {
	var f Flash
	data, err := st.client.GetDel(ctx, flashPrefix+id).Result()
	if err != nil {
		return f
	}
	_ = json.Unmarshal([]byte(data), &f)
	return f
}
