package handler

import (
	"encoding/json"

	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/response"
	"krishi-nirnay/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	mandiDefaultLimit = 15
	mandiMinLimit     = 1
	mandiMaxLimit     = 50
)

// Mandi returns wholesale prices with localized commodity names.
// GET /api/mandi?limit=
func (s *Server) Mandi(c *gin.Context) {
	lang := i18n.GetLangFromContext(c)
	limit := utils.ClampInt(utils.ParseIntQuery(c.Query("limit"), mandiDefaultLimit), mandiMinLimit, mandiMaxLimit)

	result, err := s.mandi.Fetch(c.Request.Context(), limit)
	if err != nil {
		// The service falls back to packaged prices on upstream failure, so
		// an error here means the fallback itself failed to materialize.
		logrus.Errorf("mandi fetch failed: %v", err)
		result = nil
	}
	if result == nil {
		response.Success(c, gin.H{"prices": []json.RawMessage{}, "source": "none"})
		return
	}

	// Inject the localized commodity name into each upstream-shaped record.
	prices := make([]json.RawMessage, 0, len(result.Prices))
	for _, rec := range result.Prices {
		commodity := gjson.GetBytes(rec, "commodity").String()
		localized, err := sjson.SetBytes(rec, "commodity_local", s.translator.ResolveCrop(commodity, lang))
		if err != nil {
			localized = rec
		}
		prices = append(prices, json.RawMessage(localized))
	}

	response.Success(c, gin.H{"prices": prices, "source": result.Source})
}
