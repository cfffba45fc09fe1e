package i18n

import (
	"strings"

	"krishi-nirnay/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// LangKey is the gin.Context key holding the negotiated language.
	LangKey = "lang"

	// maxLangParamLength bounds the ?lang= query value before matching.
	maxLangParamLength = 5
)

// Middleware negotiates the request language and stores it in the context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LangKey, NegotiateLanguage(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// NegotiateLanguage determines the effective request language. Precedence,
// first match wins: explicit ?lang= query parameter, Accept-Language header
// (first supported tag in header order, weights ignored), DefaultLanguage.
// Explicit user choice always beats the inferred browser locale.
func NegotiateLanguage(langParam, acceptLanguage string) string {
	if lang := utils.TruncateString(strings.TrimSpace(langParam), maxLangParamLength); IsSupported(lang) {
		return lang
	}

	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(part)
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = strings.TrimSpace(tag[:idx])
		}
		if idx := strings.Index(tag, "-"); idx >= 0 {
			tag = tag[:idx]
		}
		code := strings.ToLower(tag)
		if IsSupported(code) {
			return code
		}
	}

	return DefaultLanguage
}

// GetLangFromContext returns the negotiated language for the request, or
// DefaultLanguage when the middleware did not run.
func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get(LangKey); exists {
		if l, ok := lang.(string); ok {
			return l
		}
	}
	return DefaultLanguage
}
