package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ducbidapne/HTTPWebServer/internal/auth"
	"github.com/ducbidapne/HTTPWebServer/internal/logger"
	"github.com/ducbidapne/HTTPWebServer/internal/middleware"
	"github.com/ducbidapne/HTTPWebServer/internal/session"
	"github.com/ducbidapne/HTTPWebServer/internal/user"
)

var cookieOpts = session.CookieOptions{
	Secure:   true,
	SameSite: http.SameSiteLaxMode,
}

type Handler struct {
	auth     *auth.Service
	sessions *session.Manager
}

func NewHandler(authService *auth.Service, sessions *session.Manager) *Handler {
	return &Handler{
		auth:     authService,
		sessions: sessions,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.GET("/", h.index)
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.POST("/logout", h.logout)

	protected := r.Group("/")
	protected.Use(requireAuth)
	protected.GET("/dashboard", h.dashboard)
}

// index is public; it just reflects whether a session is present.
func (h *Handler) index(c *gin.Context) {
	var userID string
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil {
		if sess, err := h.sessions.Current(c.Request.Context(), cookie.Value); err == nil && sess != nil {
			userID = sess.UserID
		}
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{"UserID": userID})
}

func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.tmpl", nil)
}

// register creates the account but does not establish a session; the
// user logs in with the fresh credentials afterwards. Every failure
// redirects back to the form with no state created.
func (h *Handler) register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	_, err := h.auth.Register(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			logger.Warn("registration rejected", map[string]any{
				"reason": "duplicate username",
			})
		} else {
			logger.Error("registration failed", map[string]any{
				"error": err.Error(),
			})
		}
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", nil)
}

// login establishes a session on success. Unknown usernames and wrong
// passwords take the exact same path.
func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	userID, err := h.auth.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	sess, err := h.sessions.Establish(c.Request.Context(), userID)
	if err != nil {
		logger.Error("session create failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, cookieOpts)
	c.Redirect(http.StatusSeeOther, "/")
}

// logout destroys the session best-effort: a store failure is logged
// but the user still leaves with a cleared cookie and a redirect.
func (h *Handler) logout(c *gin.Context) {
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request.Context(), cookie.Value); err != nil {
			logger.Error("session destroy failed", map[string]any{
				"error": err.Error(),
			})
		}
	}

	session.ClearCookie(c.Writer, cookieOpts)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) dashboard(c *gin.Context) {
	userID, _ := middleware.UserIDFromContext(c.Request.Context())
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{"UserID": userID})
}
