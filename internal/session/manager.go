package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ducbidapne/HTTPWebServer/internal/logger"
)

const defaultTTL = 24 * time.Hour

// Manager owns the session lifecycle. A session exists only while its
// user is authenticated; a destroyed token never comes back.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, ttl: defaultTTL}
}

// Establish creates a fresh authenticated session for userID.
func (m *Manager) Establish(ctx context.Context, userID string) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := Session{
		SessionID: id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &s, nil
}

// Current resolves a token to its session. Unknown, destroyed, and
// expired tokens all resolve to nil; expired records are deleted on
// sight so they cannot linger.
func (m *Manager) Current(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	s, err := m.store.Get(ctx, sessionID)
	if err != nil || s == nil {
		return nil, err
	}

	if time.Now().After(s.ExpiresAt) {
		_ = m.store.Delete(ctx, sessionID)
		return nil, nil
	}

	return s, nil
}

// Touch slides the expiry forward. A failed refresh is logged and
// never invalidates the request that triggered it.
func (m *Manager) Touch(ctx context.Context, s *Session) {
	s.ExpiresAt = time.Now().Add(m.ttl)
	if err := m.store.Update(ctx, *s); err != nil {
		logger.Warn("session refresh failed", map[string]any{
			"error": err.Error(),
		})
	}
}

// Destroy removes the session from the store. The caller must treat
// the token as dead even when the store reports an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return m.store.Delete(ctx, sessionID)
}
