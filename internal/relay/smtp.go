package relay

import (
	"context"
	"net/mail"
	"net/smtp"
)

// Sender delivers an addressed message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SMTPSender relays through a plain SMTP endpoint, typically the local MTA.
type SMTPSender struct {
	Addr string // host:port
	Auth smtp.Auth
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return smtp.SendMail(s.Addr, s.Auth, envelopeFrom(m.From), []string{m.To}, m.Raw())
}

// envelopeFrom strips the display name for the SMTP envelope.
func envelopeFrom(from string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return from
	}
	return addr.Address
}
