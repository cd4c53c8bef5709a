package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducbidapne/HTTPWebServer/internal/session"
)

func newGate(t *testing.T) (*AuthMiddleware, *session.Manager) {
	t.Helper()
	manager := session.NewManager(session.NewMemoryStore())
	return NewAuthMiddleware(manager), manager
}

func protectedHandler(t *testing.T, called *bool, wantUserID string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := UserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantUserID, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoCookieRedirects(t *testing.T) {
	gate, _ := newGate(t)

	called := false
	handler := gate.RequireAuth(protectedHandler(t, &called, ""))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth_UnknownTokenRedirects(t *testing.T) {
	gate, _ := newGate(t)

	called := false
	handler := gate.RequireAuth(protectedHandler(t, &called, ""))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth_ValidSessionPasses(t *testing.T) {
	gate, manager := newGate(t)

	sess, err := manager.Establish(context.Background(), "user-1")
	require.NoError(t, err)

	called := false
	handler := gate.RequireAuth(protectedHandler(t, &called, "user-1"))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.SessionID})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_DestroyedTokenRedirects(t *testing.T) {
	gate, manager := newGate(t)

	sess, err := manager.Establish(context.Background(), "user-1")
	require.NoError(t, err)
	require.NoError(t, manager.Destroy(context.Background(), sess.SessionID))

	called := false
	handler := gate.RequireAuth(protectedHandler(t, &called, ""))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.SessionID})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestUserIDFromContext_Absent(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}
