package dispatcher_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pairline/pairline/internal/dispatcher"
	"github.com/pairline/pairline/internal/model"
)

type fakeTransport struct {
	sent    []dispatcher.Message
	sendErr error
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Send(m dispatcher.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m)
	return nil
}

func newDispatcher(t *fakeTransport) *dispatcher.Dispatcher {
	return dispatcher.New(t, dispatcher.Config{
		AdminEmail:    "admin@pairline.example",
		AdminPanelURL: "https://admin.pairline.example",
	})
}

func consultation() model.Consultation {
	return model.Consultation{
		ID:               42,
		RelationshipType: "couple",
		Names:            "Alice & Bob",
		Email:            "a@example.com",
		Phone:            "555-0100",
		Budget:           "premium",
	}
}

func TestSendConfirmation(t *testing.T) {
	tr := &fakeTransport{}
	if err := newDispatcher(tr).SendConfirmation(consultation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(tr.sent))
	}

	m := tr.sent[0]
	if m.To != "a@example.com" {
		t.Errorf("confirmation to wrong address %q", m.To)
	}
	if !strings.Contains(m.HTML, "Alice &amp; Bob") {
		t.Errorf("body is missing escaped names: %s", m.HTML)
	}
	if !strings.Contains(m.HTML, "premium") {
		t.Errorf("body is missing budget tier: %s", m.HTML)
	}
	if strings.Contains(m.HTML, "Anniversary") {
		t.Errorf("anniversary block rendered for a submission without one")
	}
}

func TestSendAdminAlert(t *testing.T) {
	tr := &fakeTransport{}
	if err := newDispatcher(tr).SendAdminAlert(consultation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := tr.sent[0]
	if m.To != "admin@pairline.example" {
		t.Errorf("alert to wrong address %q", m.To)
	}
	if !strings.Contains(m.Subject, "#42") {
		t.Errorf("subject is missing the identifier: %q", m.Subject)
	}
	if !strings.Contains(m.HTML, "https://admin.pairline.example/consultations/42") {
		t.Errorf("body is missing the panel link: %s", m.HTML)
	}
}

func TestSendWelcome(t *testing.T) {
	tr := &fakeTransport{}
	if err := newDispatcher(tr).SendWelcome("reader@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.sent[0].To != "reader@example.com" {
		t.Errorf("welcome to wrong address %q", tr.sent[0].To)
	}
}

func TestTransportFailureSurfacesToCaller(t *testing.T) {
	tr := &fakeTransport{sendErr: errors.New("connection refused")}
	if err := newDispatcher(tr).SendWelcome("reader@example.com"); err == nil {
		t.Fatal("expected transport error to propagate to the detached caller")
	}
}
