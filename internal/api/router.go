package api

import (
	"github.com/bubbletap/bubbletap/internal/api/admin"
	"github.com/bubbletap/bubbletap/internal/api/embed"
	"github.com/bubbletap/bubbletap/internal/api/middleware"
	"github.com/bubbletap/bubbletap/internal/service"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
	CacheMaxAge  int
}

// SetupRouter sets up the Gin router
func SetupRouter(
	widgetService *service.WidgetService,
	renderService *service.RenderService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public embed endpoints (script delivery + loader)
	embedHandler := embed.NewHandler(renderService, cfg.CacheMaxAge)
	embedHandler.RegisterRoutes(r)

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(widgetService, renderService)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
