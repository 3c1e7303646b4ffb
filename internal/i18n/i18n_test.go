package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	c := New([]string{"en", "es"})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"exact spanish", "es", "es"},
		{"regional spanish", "es-MX,es;q=0.9", "es"},
		{"english preferred", "en-US,en;q=0.9,es;q=0.5", "en"},
		{"unsupported falls back", "fr-FR,fr;q=0.9", "en"},
		{"empty header", "", "en"},
		{"garbage header", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Negotiate(tt.header))
		})
	}
}

func TestT(t *testing.T) {
	t.Parallel()

	c := New([]string{"en", "es"})

	assert.Equal(t, "Your post is now live!", c.T("en", "post_live"))
	assert.Equal(t, "¡Tu publicación ya está disponible!", c.T("es", "post_live"))
	assert.Equal(t, "User susan not found.", c.T("en", "user_not_found", "susan"))

	// Unknown locale falls back to the default language.
	assert.Equal(t, "Your post is now live!", c.T("de", "post_live"))
	// Unknown keys come back verbatim rather than blowing up.
	assert.Equal(t, "no_such_key", c.T("en", "no_such_key"))
}

func TestNew_EmptyAndInvalidLocales(t *testing.T) {
	t.Parallel()

	c := New(nil)
	assert.Equal(t, "en", c.Negotiate("es"))

	c = New([]string{"!!", "es"})
	assert.Equal(t, "es", c.Negotiate("es"))
}
