package session

import (
	"context"
	"time"
)

// Session binds an opaque token to an authenticated user. The client
// only ever sees the token; everything else lives server-side.
type Session struct {
	SessionID string    // opaque token carried by the cookie
	UserID    string    // references users.id
	CreatedAt time.Time
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are persisted, independent of any web
// framework. Implementations must treat an unknown token as absent,
// not as an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
