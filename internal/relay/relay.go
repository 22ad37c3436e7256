// Package relay accepts storefront contact and order submissions and hands
// them to the shop mailbox.
package relay

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

// Form types accepted by the relay. Anything else is treated as contact.
const (
	FormContact = "contact"
	FormOrder   = "order"
)

// ErrInvalidInput rejects a submission missing a name or a well-formed
// email address. No other field is required.
var ErrInvalidInput = errors.New("invalid input")

// Submission is one posted form.
type Submission struct {
	FormType string
	Name     string
	Email    string
	Phone    string
	Product  string
	Message  string
}

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// Normalize trims every field, folds line breaks out of the header-bound
// ones and defaults the form type.
func Normalize(s Submission) Submission {
	s.FormType = strings.TrimSpace(s.FormType)
	if s.FormType == "" {
		s.FormType = FormContact
	}
	s.Name = lineBreaks.ReplaceAllString(strings.TrimSpace(s.Name), " ")
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Product = lineBreaks.ReplaceAllString(strings.TrimSpace(s.Product), " ")
	s.Message = strings.TrimSpace(s.Message)
	return s
}

// Validate reports whether a normalized submission may be relayed.
func Validate(s Submission) error {
	if s.Name == "" {
		return ErrInvalidInput
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return ErrInvalidInput
	}
	return nil
}

// Subject returns the localized mail subject for the form type.
func Subject(formType string) string {
	if formType == FormOrder {
		return "Нова поръчка от сайта"
	}
	return "Ново запитване от сайта"
}

// Body renders the plain-text mail body. Phone and product lines appear
// only when provided; an empty message becomes "-".
func Body(s Submission) string {
	lines := []string{
		"Тип: " + s.FormType,
		"Име: " + s.Name,
		"Имейл: " + s.Email,
	}
	if s.Phone != "" {
		lines = append(lines, "Телефон: "+s.Phone)
	}
	if s.Product != "" {
		lines = append(lines, "Продукт: "+s.Product)
	}
	lines = append(lines, "Съобщение:")
	if s.Message != "" {
		lines = append(lines, s.Message)
	} else {
		lines = append(lines, "-")
	}
	return strings.Join(lines, "\n")
}
