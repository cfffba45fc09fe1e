package handler

import (
	"net/http"
	"strings"

	"krishi-nirnay/internal/i18n"

	"github.com/gin-gonic/gin"
)

const localeContentType = "application/json; charset=utf-8"

var emptyLocaleDocument = []byte("{}")

// Locale serves a locale document for frontend i18n. Unknown languages,
// unknown modules, and missing documents all yield 404 with an empty JSON
// object so the frontend resolver can fall back without special-casing.
// GET /locales/:lang/:file
func (s *Server) Locale(c *gin.Context) {
	lang := c.Param("lang")
	file := c.Param("file")
	module := strings.TrimSuffix(file, ".json")

	if !strings.HasSuffix(file, ".json") || !i18n.IsSupported(lang) || !i18n.IsKnownModule(module) {
		c.Data(http.StatusNotFound, localeContentType, emptyLocaleDocument)
		return
	}

	// Served straight from disk: a document added while the process is
	// running must not be masked by a stale negative cache entry.
	doc, err := s.locales.ReadFile(lang, module)
	if err != nil {
		c.Data(http.StatusNotFound, localeContentType, emptyLocaleDocument)
		return
	}
	c.Data(http.StatusOK, localeContentType, doc)
}
