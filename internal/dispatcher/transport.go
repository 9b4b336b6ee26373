package dispatcher

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Message is a rendered mail ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Transport hands a rendered message to an external delivery mechanism.
// Delivery timeouts are the transport's own; callers never retry.
type Transport interface {
	Name() string
	Send(m Message) error
}

// SMTPTransport delivers via a plain SMTP relay.
type SMTPTransport struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPTransport(host string, port int, username, password, from string) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

var _ Transport = (*SMTPTransport)(nil)

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", t.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	if err := t.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.To, err)
	}
	return nil
}
