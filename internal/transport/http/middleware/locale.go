package middleware

import (
	"context"
	"net/http"

	"microblog/internal/i18n"
)

const LocaleKey contextKey = "locale"

// Locale negotiates the request language from Accept-Language against the
// supported locale list and stores the result on the context.
func Locale(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := catalog.Negotiate(r.Header.Get("Accept-Language"))
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLocale returns the negotiated locale for the request, defaulting to "en".
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(LocaleKey).(string); ok {
		return locale
	}
	return "en"
}
