package handler

import (
	"strings"

	app_errors "krishi-nirnay/internal/errors"
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/response"
	"krishi-nirnay/internal/utils"

	"github.com/gin-gonic/gin"
)

// UpdateLanguageRequest defines the request payload for a language change.
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// UpdateLanguage validates and acknowledges a user language preference.
// Persistence is left to the client; the server only validates the code.
// POST /api/user/update-language
func (s *Server) UpdateLanguage(c *gin.Context) {
	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	lang := utils.TruncateString(strings.TrimSpace(req.Language), 5)
	if !i18n.IsSupported(lang) {
		response.Error(c, app_errors.NewValidationError("Invalid language code"))
		return
	}

	response.Success(c, gin.H{"success": true, "language": lang})
}
