// Package validate checks submitted form fields before anything is
// persisted. Violations are collected per field and reported together,
// never one at a time.
package validate

import (
	"net/mail"
	"strings"
)

// Violation is a single field-level problem with a submission.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// ConsultationFields is the field set checked for a consultation submission.
type ConsultationFields struct {
	RelationshipType string
	Names            string
	Email            string
	Phone            string
	Budget           string
}

// Consultation returns the full ordered violation list for a consultation
// submission. Anniversary and preferences are optional and never checked.
func Consultation(f ConsultationFields) []Violation {
	var vs []Violation
	if strings.TrimSpace(f.RelationshipType) == "" {
		vs = append(vs, Violation{Field: "relationshipType", Message: "relationship type is required"})
	}
	if strings.TrimSpace(f.Names) == "" {
		vs = append(vs, Violation{Field: "names", Message: "names are required"})
	}
	if !EmailOK(f.Email) {
		vs = append(vs, Violation{Field: "email", Message: "a valid email address is required"})
	}
	if strings.TrimSpace(f.Phone) == "" {
		vs = append(vs, Violation{Field: "phone", Message: "phone is required"})
	}
	if strings.TrimSpace(f.Budget) == "" {
		vs = append(vs, Violation{Field: "budget", Message: "budget is required"})
	}
	return vs
}

// Newsletter returns the violation list for a newsletter signup.
// Source is validated separately by model.ParseSubscriberSource.
func Newsletter(email string) []Violation {
	var vs []Violation
	if !EmailOK(email) {
		vs = append(vs, Violation{Field: "email", Message: "a valid email address is required"})
	}
	return vs
}

// EmailOK reports whether addr parses as a bare RFC 5322 address.
func EmailOK(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil {
		return false
	}
	// reject "Name <a@b>" forms: forms submit the address alone
	return parsed.Address == addr
}
