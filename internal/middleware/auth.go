package middleware

import (
	"context"
	"net/http"

	"github.com/ducbidapne/HTTPWebServer/internal/session"
)

const loginPath = "/login"

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

type AuthMiddleware struct {
	Sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

// RequireAuth gates protected routes on session state. Every deny path
// is a redirect to the login page, never an error response.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		// 2. Resolve session; destroyed and expired tokens are anonymous
		sess, err := a.Sessions.Current(r.Context(), cookie.Value)
		if err != nil || sess == nil {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		// 3. Sliding expiry
		a.Sessions.Touch(r.Context(), sess)

		// 4. Attach user_id to context and continue
		ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
