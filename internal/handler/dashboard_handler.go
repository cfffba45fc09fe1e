package handler

import (
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/response"
	"krishi-nirnay/internal/utils"

	"github.com/gin-gonic/gin"
)

// Schemes returns the government scheme catalogue localized for the request.
// GET /api/schemes
func (s *Server) Schemes(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	response.Success(c, gin.H{"schemes": s.schemes.List(lang)})
}

// Soil returns the soil health advisory for a state and district.
// GET /api/soil?state=&district=
func (s *Server) Soil(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	advisory := s.soil.Advisory(c.Query("state"), c.Query("district"), lang)
	response.Success(c, advisory)
}

// Satellite returns satellite and NDVI portal references.
// GET /api/satellite?lat=&lon=&state=
func (s *Server) Satellite(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	lat := utils.ParseFloatQuery(c.Query("lat"), 0)
	lon := utils.ParseFloatQuery(c.Query("lon"), 0)

	info := s.satellite.Info(lat, lon, c.Query("state"))
	if lang == "hi" {
		info.Description = info.DescriptionHi
	} else {
		info.Description = info.DescriptionEn
	}
	response.Success(c, info)
}

// DailyAdvisory returns the composed weather and soil advisory.
// GET /api/advisory?lat=&lon=&state=
func (s *Server) DailyAdvisory(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	lat := utils.ParseFloatQuery(c.Query("lat"), 0)
	lon := utils.ParseFloatQuery(c.Query("lon"), 0)

	response.Success(c, s.advisory.Get(c.Request.Context(), lang, lat, lon, c.Query("state")))
}
