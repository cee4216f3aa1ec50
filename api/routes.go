package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-api/api/auth"
	"github.com/killallgit/podcast-api/api/health"
	"github.com/killallgit/podcast-api/api/podcasts"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/api/users"
	"github.com/killallgit/podcast-api/api/version"
	_ "github.com/killallgit/podcast-api/docs/swagger"
	"github.com/killallgit/podcast-api/internal/models"
)

// RegisterRoutes registers all API routes. rateLimit may be nil.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimit gin.HandlerFunc) error {
	if deps.PodcastService == nil || deps.UserService == nil || deps.Verifier == nil {
		return errors.New("missing service dependencies")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if rateLimit != nil {
		v1.Use(rateLimit)
	}

	authHandler := auth.NewHandler(deps.Verifier, deps.UserService)
	requireUser := authHandler.AuthMiddleware()

	podcasts.RegisterRoutes(v1.Group("/podcasts"), deps, requireUser, authHandler.RequireRole(models.RoleHost))
	users.RegisterRoutes(v1.Group("/users"), deps, requireUser)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":    false,
			"error": "The requested endpoint was not found",
			"path":  c.Request.URL.Path,
		})
	}
}
