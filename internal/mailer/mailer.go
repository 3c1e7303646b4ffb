// Package mailer delivers email off the request path. Enqueue never blocks
// and never reports failure to the caller; delivery problems are logged and
// the message is dropped, not retried.
package mailer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gopkg.in/gomail.v2"

	"microblog/internal/config"
)

const (
	queueSize = 64
	workers   = 2
)

// Message is one outbound email.
type Message struct {
	Subject    string
	Recipients []string
	Body       string
}

type Mailer struct {
	cfg  *config.Config
	log  *logrus.Logger
	jobs chan Message
	g    *errgroup.Group
}

func New(cfg *config.Config, log *logrus.Logger) *Mailer {
	return &Mailer{
		cfg:  cfg,
		log:  log,
		jobs: make(chan Message, queueSize),
	}
}

// Start launches the delivery workers. They drain the queue until ctx is
// cancelled.
func (m *Mailer) Start(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	m.g = g
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case msg := <-m.jobs:
					if err := m.send(msg); err != nil {
						// Warn, not Error: the admin-mail log hook fires on
						// Error and would loop on a broken mail server.
						m.log.WithError(err).WithField("subject", msg.Subject).
							Warn("mail delivery failed")
					}
				}
			}
		})
	}
}

// Wait blocks until all workers have exited.
func (m *Mailer) Wait() error {
	if m.g == nil {
		return nil
	}
	return m.g.Wait()
}

// Enqueue hands a message to the workers, fire-and-forget. A full queue drops
// the message.
func (m *Mailer) Enqueue(msg Message) {
	if m.cfg.Mail.Server == "" {
		m.log.WithField("subject", msg.Subject).Debug("mail server not configured, dropping message")
		return
	}
	select {
	case m.jobs <- msg:
	default:
		m.log.WithField("subject", msg.Subject).Warn("mail queue full, dropping message")
	}
}

func (m *Mailer) send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.Mail.Sender)
	gm.SetHeader("To", msg.Recipients...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(m.cfg.Mail.Server, m.cfg.Mail.Port, m.cfg.Mail.Username, m.cfg.Mail.Password)
	d.SSL = m.cfg.Mail.UseTLS

	if err := d.DialAndSend(gm); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
