// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"net/http"
	"time"

	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/services"
	"krishi-nirnay/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
)

// Server holds dependencies for all HTTP handlers.
type Server struct {
	config     types.ConfigManager
	translator *i18n.Translator
	locales    *i18n.LocaleStore
	weather    services.WeatherSource
	mandi      services.MandiSource
	schemes    services.SchemeSource
	soil       services.SoilSource
	satellite  *services.SatelliteService
	advisory   *services.AdvisoryService
	chatbot    *services.ChatbotEngine
}

// ServerParams defines the dependencies for the Server handler.
type ServerParams struct {
	dig.In

	Config     types.ConfigManager
	Translator *i18n.Translator
	Locales    *i18n.LocaleStore
	Weather    services.WeatherSource
	Mandi      services.MandiSource
	Schemes    services.SchemeSource
	Soil       services.SoilSource
	Satellite  *services.SatelliteService
	Advisory   *services.AdvisoryService
	Chatbot    *services.ChatbotEngine
}

// NewServer creates a new Server instance.
func NewServer(params ServerParams) *Server {
	return &Server{
		config:     params.Config,
		translator: params.Translator,
		locales:    params.Locales,
		weather:    params.Weather,
		mandi:      params.Mandi,
		schemes:    params.Schemes,
		soil:       params.Soil,
		satellite:  params.Satellite,
		advisory:   params.Advisory,
		chatbot:    params.Chatbot,
	}
}

// Health handles the health check endpoint.
func (s *Server) Health(c *gin.Context) {
	payload := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if startTime, exists := c.Get("serverStartTime"); exists {
		if st, ok := startTime.(time.Time); ok {
			payload["uptime"] = time.Since(st).String()
		}
	}
	c.JSON(http.StatusOK, payload)
}
