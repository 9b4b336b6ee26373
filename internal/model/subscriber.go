package model

import (
	"strings"
	"time"
)

type SubscriberSource string

const (
	SourceConsultation SubscriberSource = "consultation"
	SourceNewsletter   SubscriberSource = "newsletter"
	SourceDownload     SubscriberSource = "download"
)

func (s SubscriberSource) String() string { return string(s) }

// ParseSubscriberSource normalizes input; empty => newsletter.
// Returns (value, true) if valid; otherwise (newsletter, false).
func ParseSubscriberSource(s string) (SubscriberSource, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newsletter":
		return SourceNewsletter, true
	case "consultation":
		return SourceConsultation, true
	case "download":
		return SourceDownload, true
	default:
		return SourceNewsletter, false
	}
}

// Subscriber is the DB entity persisted in the email_subscribers table.
// Email is UNIQUE; duplicate signups are silently idempotent.
type Subscriber struct {
	ID        int64            `db:"id" json:"id"`
	Email     string           `db:"email" json:"email"`
	Source    SubscriberSource `db:"source" json:"source"`
	Status    string           `db:"status" json:"status"` // active|unsubscribed
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}
