package router

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"krishi-nirnay/internal/handler"
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/middleware"
	"krishi-nirnay/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetPerformanceConfig()))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler)
	registerLocaleRoutes(router, serverHandler)
	registerFrontendRoutes(router, configManager)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers API routes
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())

	// Dashboard data
	api.GET("/weather", serverHandler.Weather)
	api.GET("/mandi", serverHandler.Mandi)
	api.GET("/schemes", serverHandler.Schemes)
	api.GET("/soil", serverHandler.Soil)
	api.GET("/satellite", serverHandler.Satellite)
	api.GET("/advisory", serverHandler.DailyAdvisory)

	// Chatbot
	chatbot := api.Group("/chatbot")
	{
		chatbot.POST("/message", serverHandler.ChatMessage)
		chatbot.POST("/analyze-image", serverHandler.AnalyzeImage)
	}

	// User preferences
	api.POST("/user/update-language", serverHandler.UpdateLanguage)
}

// registerLocaleRoutes registers locale document routes for frontend i18n
func registerLocaleRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/locales/:lang/:file", serverHandler.Locale)
}

// registerFrontendRoutes registers static frontend routes
func registerFrontendRoutes(router *gin.Engine, configManager types.ConfigManager) {
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.Use(middleware.StaticCache())

	staticDir := configManager.GetLocaleConfig().StaticDir
	router.Use(static.Serve("/", static.LocalFile(staticDir, true)))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") || strings.HasPrefix(c.Request.RequestURI, "/locales") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		// HTML pages are not cached to ensure updates take effect immediately
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
