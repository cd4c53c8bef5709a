package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/ducbidapne/HTTPWebServer/internal/auth"
	"github.com/ducbidapne/HTTPWebServer/internal/config"
	"github.com/ducbidapne/HTTPWebServer/internal/logger"
	"github.com/ducbidapne/HTTPWebServer/internal/middleware"
	"github.com/ducbidapne/HTTPWebServer/internal/session"
	"github.com/ducbidapne/HTTPWebServer/internal/user"
	"github.com/ducbidapne/HTTPWebServer/internal/web"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET not set", nil)
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessions := session.NewManager(sessionStore)

	userStore := user.NewPostgresStore(infra.DB)
	authService := auth.NewService(userStore)

	webHandler := web.NewHandler(authService, sessions)
	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("./web/templates/*.tmpl")

	webHandler.RegisterRoutes(router, middleware.GinRequireAuth(authMiddleware))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
