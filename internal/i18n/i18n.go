// Package i18n negotiates a per-request locale from the Accept-Language
// header and serves the user-facing message catalog.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Catalog holds the supported locales and their message translations.
type Catalog struct {
	defaultLocale string
	tags          []language.Tag
	matcher       language.Matcher
}

// New builds a Catalog for the configured locale list. The first entry is the
// fallback for clients with no usable Accept-Language header.
func New(locales []string) *Catalog {
	if len(locales) == 0 {
		locales = []string{"en"}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.English}
	}

	return &Catalog{
		defaultLocale: tags[0].String(),
		tags:          tags,
		matcher:       language.NewMatcher(tags),
	}
}

// Negotiate picks the best supported locale for an Accept-Language header.
func (c *Catalog) Negotiate(acceptLanguage string) string {
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.defaultLocale
	}
	_, idx, _ := c.matcher.Match(prefs...)
	return c.tags[idx].String()
}

// T returns the message for key in the given locale, formatted with args.
// Unknown locales fall back to the default; unknown keys return the key.
func (c *Catalog) T(locale, key string, args ...any) string {
	msgs, ok := messages[locale]
	if !ok {
		msgs = messages[c.defaultLocale]
	}
	msg, ok := msgs[key]
	if !ok {
		if msg, ok = messages["en"][key]; !ok {
			return key
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

var messages = map[string]map[string]string{
	"en": {
		"post_live":             "Your post is now live!",
		"invalid_credentials":   "Invalid username or password",
		"registered":            "Congratulations, you are now a registered user!",
		"user_not_found":        "User %s not found.",
		"cannot_follow_self":    "You cannot follow yourself!",
		"cannot_unfollow_self":  "You cannot un-follow yourself!",
		"now_following":         "You are following %s!",
		"stopped_following":     "You are not following %s.",
		"changes_saved":         "Your changes have been saved",
		"check_email":           "Check your email for the instructions to reset your password",
		"password_reset":        "Your password has been reset.",
		"reset_subject":         "[Microblog] Reset Your Password",
		"translate_unconfigured": "Error: the translation service is not configured.",
		"translate_failed":      "Error: the translation service failed.",
	},
	"es": {
		"post_live":             "¡Tu publicación ya está disponible!",
		"invalid_credentials":   "Nombre de usuario o contraseña no válidos",
		"registered":            "¡Felicidades, ya eres un usuario registrado!",
		"user_not_found":        "Usuario %s no encontrado.",
		"cannot_follow_self":    "¡No puedes seguirte a ti mismo!",
		"cannot_unfollow_self":  "¡No puedes dejar de seguirte a ti mismo!",
		"now_following":         "¡Estás siguiendo a %s!",
		"stopped_following":     "Ya no sigues a %s.",
		"changes_saved":         "Tus cambios se han guardado",
		"check_email":           "Revisa tu correo para las instrucciones de restablecer tu contraseña",
		"password_reset":        "Tu contraseña ha sido restablecida.",
		"reset_subject":         "[Microblog] Restablece tu contraseña",
		"translate_unconfigured": "Error: el servicio de traducción no está configurado.",
		"translate_failed":      "Error: el servicio de traducción ha fallado.",
	},
}
