package notifier

import (
	"context"
	"fmt"

	"fjacquet/autokit/internal/config"
	"fjacquet/autokit/internal/logging"

	"github.com/wneessen/go-mail"
)

// Email is a rendered message ready for transport.
type Email struct {
	Recipients []string
	Subject    string
	Body       string
	HTML       bool
}

// Sender delivers a rendered email. The SMTP implementation is the only
// production one; tests substitute a mock.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SMTPSender sends email through a configured SMTP server using STARTTLS
// and username/password authentication.
type SMTPSender struct {
	cfg    *config.Config
	logger logging.Logger
}

// NewSMTPSender creates an SMTP sender from configuration.
func NewSMTPSender(cfg *config.Config, logger logging.Logger) (*SMTPSender, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp.host is not configured")
	}
	if cfg.SMTP.From == "" {
		return nil, fmt.Errorf("smtp.from is not configured")
	}
	return &SMTPSender{cfg: cfg, logger: logger}, nil
}

// Send connects, authenticates, delivers the message and disconnects.
// The connection is scoped to this single send on every exit path.
func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	msg := mail.NewMsg()
	if err := msg.From(s.cfg.SMTP.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", s.cfg.SMTP.From, err)
	}
	if err := msg.To(email.Recipients...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(email.Subject)
	if email.HTML {
		msg.SetBodyString(mail.TypeTextHTML, email.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, email.Body)
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTP.Port),
	}
	if s.cfg.SMTP.StartTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if s.cfg.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.SMTP.Username),
			mail.WithPassword(s.cfg.SMTP.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.SMTP.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldRecipient, Value: email.Recipients},
		logging.Field{Key: logging.FieldCount, Value: len(email.Recipients)},
	).Info("Email sent")
	return nil
}
