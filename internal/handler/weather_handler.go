package handler

import (
	"net/http"

	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/response"
	"krishi-nirnay/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Weather returns current conditions and a 3-day forecast.
// GET /api/weather?lat=&lon=
func (s *Server) Weather(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	lat := utils.ParseFloatQuery(c.Query("lat"), 0)
	lon := utils.ParseFloatQuery(c.Query("lon"), 0)

	data, err := s.weather.Fetch(c.Request.Context(), lat, lon)
	if err != nil {
		// Upstream failure degrades to an error-marker body with 200; the
		// frontend treats any non-2xx as a hard failure and would lose the
		// graceful fallback.
		logrus.Warnf("weather fetch failed: %v", err)
		c.JSON(http.StatusOK, gin.H{
			"error":   "weather service unavailable",
			"current": nil,
			"daily":   nil,
		})
		return
	}

	// Resolve the condition key to a display label for the frontend.
	if data.Current != nil && data.Current.Condition != "" {
		data.Current.ConditionLabel = s.translator.T(lang, "common", "weather.conditions."+data.Current.Condition)
	}
	response.Success(c, data)
}
