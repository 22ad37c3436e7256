package relay

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Message is a fully addressed mail ready for a Sender.
type Message struct {
	ID      string
	To      string
	From    string
	ReplyTo string
	Subject string
	Body    string
}

// NewMessage addresses a validated submission. The From domain follows the
// host the form was posted to; the submitter lands in Reply-To.
func NewMessage(to, host string, s Submission) Message {
	if host == "" {
		host = "localhost"
	}
	return Message{
		ID:      fmt.Sprintf("<%s@%s>", uuid.NewString(), host),
		To:      to,
		From:    fmt.Sprintf("LindiLove <no-reply@%s>", host),
		ReplyTo: s.Email,
		Subject: Subject(s.FormType),
		Body:    Body(s),
	}
}

// Raw renders the RFC 5322 wire form. The subject is an encoded word so the
// Cyrillic text survives 7-bit transports.
func (m Message) Raw() []byte {
	headers := []string{
		"From: " + m.From,
		"To: " + m.To,
		"Reply-To: " + m.ReplyTo,
		"Message-ID: " + m.ID,
		"Subject: " + encodeSubject(m.Subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + m.Body)
}

func encodeSubject(subject string) string {
	return "=?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(subject)) + "?="
}
