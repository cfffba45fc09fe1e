package handler

import (
	app_errors "krishi-nirnay/internal/errors"
	"krishi-nirnay/internal/i18n"
	"krishi-nirnay/internal/response"

	"github.com/gin-gonic/gin"
)

// ChatMessageRequest defines the request payload for a chatbot message.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessage answers a free-text chatbot message.
// POST /api/chatbot/message
func (s *Server) ChatMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	lang := i18n.GetLangFromContext(c)
	reply := s.chatbot.Reply(c.Request.Context(), req.Message, lang)
	response.Success(c, gin.H{"reply": reply, "language": lang})
}

// AnalyzeImageRequest defines the request payload for pest image analysis.
// The detection fields stand in for a real model's output.
type AnalyzeImageRequest struct {
	PestNameEn  string `json:"pest_name_en"`
	TreatmentEn string `json:"treatment_en"`
}

// AnalyzeImage localizes a pest detection result. A real detection model is
// not wired in; callers may supply the detected names, otherwise defaults
// are used.
// POST /api/chatbot/analyze-image
func (s *Server) AnalyzeImage(c *gin.Context) {
	var req AnalyzeImageRequest
	// A missing or invalid body falls through to the defaults.
	_ = c.ShouldBindJSON(&req)

	if req.PestNameEn == "" {
		req.PestNameEn = "Pink Bollworm"
	}
	if req.TreatmentEn == "" {
		req.TreatmentEn = "Spray Neem Oil"
	}

	lang := i18n.GetLangFromContext(c)
	response.Success(c, gin.H{
		"pest_name": s.translator.ResolvePest(req.PestNameEn, lang),
		"treatment": s.translator.ResolveTreatment(req.TreatmentEn, lang),
		"language":  lang,
	})
}
