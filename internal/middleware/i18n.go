// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-backend/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", parseLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// parseLanguage handles headers like "zh-TW,zh;q=0.9,en;q=0.8" by taking the first preference.
func parseLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLanguage()
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])

	// Convert common language codes
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh-HK":
		first = "zh_TW"
	case "en", "en-US", "en-GB":
		first = "en"
	}

	if !i18n.IsSupported(first) {
		return i18n.DefaultLanguage()
	}
	return first
}
