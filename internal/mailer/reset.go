package mailer

import (
	"fmt"

	"microblog/internal/domain"
	"microblog/internal/i18n"
)

// SendPasswordReset queues the password-reset email for user. The token goes
// into a reset link relative to the public site; the subject follows the
// user's negotiated locale.
func (m *Mailer) SendPasswordReset(catalog *i18n.Catalog, locale string, user *domain.User, token string) {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"To reset your password submit a new one to:\n\n/reset_password/%s\n\n"+
			"If you have not requested a password reset simply ignore this message.\n\n"+
			"Sincerely,\n\nThe Microblog Team",
		user.Username, token,
	)

	m.Enqueue(Message{
		Subject:    catalog.T(locale, "reset_subject"),
		Recipients: []string{user.Email},
		Body:       body,
	})
}
