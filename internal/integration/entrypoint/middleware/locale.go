package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/finex/backend/internal/integration/i18n"
)

// LocaleKey is the context key for the resolved locale.
const LocaleKey ContextKey = "locale"

// Locale resolves the request locale from the lang query parameter or Accept-Language.
// An authenticated session overrides it with its own locale.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(LocaleKey), i18n.Match(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// GetLocale returns the locale of the request, or the default one.
func GetLocale(c *gin.Context) string {
	if locale := c.GetString(string(LocaleKey)); locale != "" {
		return locale
	}
	return i18n.Default
}
