// Package mailer sends HTML email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/heartmarshall/entomoguide-backend/internal/config"
)

// Mailer sends messages from a fixed sender through one SMTP relay.
type Mailer struct {
	client   *mail.Client
	from     string
	fromName string
}

// New configures an SMTP client from cfg. No connection is made until Send.
func New(cfg config.MailConfig) (*Mailer, error) {
	policy, err := tlsPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(policy),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: new client: %w", err)
	}

	return &Mailer{client: client, from: cfg.From, fromName: cfg.FromName}, nil
}

// Send delivers one HTML message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg, err := m.message(to, subject, htmlBody)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) message(to, subject, htmlBody string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return nil, fmt.Errorf("mailer: from %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mailer: to %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	return msg, nil
}

func tlsPolicy(name string) (mail.TLSPolicy, error) {
	switch strings.ToLower(name) {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("mailer: unknown tls policy %q", name)
	}
}
