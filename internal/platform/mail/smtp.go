package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/homeware/paynotify/pkg/config"
)

// Mailer is the outbound mail capability consumed by the notification
// pipeline. Implementations may fail; callers own the error mapping.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers messages over SMTP using the configured relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	log    *zap.SugaredLogger
}

func NewSMTPMailer(cfg *cfgpkg.Config, log *zap.SugaredLogger) (Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.SMTP.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}
	client, err := gomail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.SMTP.From, log: log}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Errorw("smtp send failed", "to", to, "err", err)
		return err
	}
	m.log.Infow("smtp send ok", "to", to, "subject", subject)
	return nil
}

var Module = fx.Options(
	fx.Provide(NewSMTPMailer),
)
