// Package logging configures the application logger and the hook that mails
// Error-level incidents to the administrator list.
package logging

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"microblog/internal/mailer"
)

func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

// MailHook emails log entries at Error level and above to the admin list.
type MailHook struct {
	mailer *mailer.Mailer
	admins []string
}

func NewMailHook(m *mailer.Mailer, admins []string) *MailHook {
	return &MailHook{mailer: m, admins: admins}
}

func (h *MailHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

func (h *MailHook) Fire(entry *logrus.Entry) error {
	if len(h.admins) == 0 {
		return nil
	}

	body := entry.Message
	for k, v := range entry.Data {
		body += fmt.Sprintf("\n%s=%v", k, v)
	}

	h.mailer.Enqueue(mailer.Message{
		Subject:    "Microblog Failure",
		Recipients: h.admins,
		Body:       body,
	})
	return nil
}
