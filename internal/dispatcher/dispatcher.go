// Package dispatcher renders templated transactional mail and hands it to
// an external transport. Delivery is single-attempt: no queue, no retry,
// no backoff. The caller decides what a failure means; for the request
// pipeline it means a log line and nothing else.
package dispatcher

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pairline/pairline/internal/metrics"
	"github.com/pairline/pairline/internal/model"
)

type Config struct {
	AdminEmail    string // admin-alert recipient
	AdminPanelURL string // linked from admin alerts
}

type Dispatcher struct {
	transport     Transport
	adminEmail    string
	adminPanelURL string
}

func New(t Transport, cfg Config) *Dispatcher {
	return &Dispatcher{
		transport:     t,
		adminEmail:    cfg.AdminEmail,
		adminPanelURL: cfg.AdminPanelURL,
	}
}

type adminAlertData struct {
	model.Consultation
	PanelURL string
}

// SendConfirmation mails the submitter that their consultation was received.
func (d *Dispatcher) SendConfirmation(c model.Consultation) error {
	return d.send("confirmation", Message{
		To:      c.Email,
		Subject: "We received your consultation request",
	}, confirmation, c)
}

// SendAdminAlert mails the configured admin address about a new consultation.
func (d *Dispatcher) SendAdminAlert(c model.Consultation) error {
	return d.send("admin-alert", Message{
		To:      d.adminEmail,
		Subject: fmt.Sprintf("New consultation #%d (%s)", c.ID, c.Budget),
	}, adminAlert, adminAlertData{Consultation: c, PanelURL: d.adminPanelURL})
}

// SendWelcome mails a newsletter signup.
func (d *Dispatcher) SendWelcome(email string) error {
	return d.send("welcome", Message{
		To:      email,
		Subject: "Welcome to the Pairline newsletter",
	}, welcome, nil)
}

func (d *Dispatcher) send(kind string, m Message, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "failed").Inc()
		return fmt.Errorf("render %s: %w", kind, err)
	}
	m.HTML = buf.String()

	if err := d.transport.Send(m); err != nil {
		metrics.NotificationsTotal.WithLabelValues(kind, "failed").Inc()
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(kind, "sent").Inc()
	return nil
}
