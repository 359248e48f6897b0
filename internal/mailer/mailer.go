// Package mailer delivers feedback emails over SMTP.
package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"screening-backend/internal/shared/metrics"
	"screening-backend/internal/shared/telemetry"
)

type Config struct {
	User     string
	Password string
	Server   string
	Port     int
}

// Result reports a single delivery attempt. Status is a short human
// readable outcome, "Sent" on success.
type Result struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

type Dispatcher struct {
	cfg Config
}

func New(cfg Config) *Dispatcher {
	return &Dispatcher{cfg: cfg}
}

// Send delivers one plain-text email. Port 465 uses implicit TLS,
// everything else negotiates STARTTLS. A delivery failure comes back
// as a Result, not an error: callers in a mass send keep going.
func (d *Dispatcher) Send(ctx context.Context, recipient, subject, body string) Result {
	metrics.IncSendAttempt()

	if d.cfg.User == "" || d.cfg.Password == "" {
		metrics.IncSendFailure()
		return Result{Status: "SMTP_USER and SMTP_PASSWORD are not configured"}
	}

	msg := mail.NewMsg()
	if err := msg.From(d.cfg.User); err != nil {
		metrics.IncSendFailure()
		return Result{Status: fmt.Sprintf("invalid sender %q: %v", d.cfg.User, err)}
	}
	if err := msg.To(recipient); err != nil {
		metrics.IncSendFailure()
		return Result{Status: fmt.Sprintf("invalid recipient %q: %v", recipient, err)}
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(d.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.User),
		mail.WithPassword(d.cfg.Password),
	}
	if d.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(d.cfg.Server, opts...)
	if err != nil {
		metrics.IncSendFailure()
		return Result{Status: fmt.Sprintf("smtp client: %v", err)}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		metrics.IncSendFailure()
		telemetry.Warn("mailer.send.failed", map[string]any{
			"recipient": recipient,
			"error":     err.Error(),
		})
		return Result{Status: fmt.Sprintf("send failed: %v", err)}
	}

	telemetry.Info("mailer.send.ok", map[string]any{"recipient": recipient})
	return Result{OK: true, Status: "Sent"}
}
