package model

import "time"

type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationContacted ConsultationStatus = "contacted"
	ConsultationClosed    ConsultationStatus = "closed"
)

func (s ConsultationStatus) String() string {
	return string(s)
}

func (s ConsultationStatus) Valid() bool {
	return s == ConsultationPending || s == ConsultationContacted || s == ConsultationClosed
}

// Consultation is the DB entity persisted in the consultations table.
type Consultation struct {
	ID               int64     `db:"id" json:"id"`
	RelationshipType string    `db:"relationship_type" json:"relationshipType"`
	Names            string    `db:"names" json:"names"`
	Email            string    `db:"email" json:"email"`
	Phone            string    `db:"phone" json:"phone"`
	Anniversary      *string   `db:"anniversary" json:"anniversary,omitempty"` // nullable
	Preferences      string    `db:"preferences" json:"preferences"`
	Budget           string    `db:"budget" json:"budget"`
	Status           string    `db:"status" json:"status"` // pending|contacted|closed
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// ConsultationInput is the submitted form payload before persistence.
type ConsultationInput struct {
	RelationshipType string  `json:"relationshipType"`
	Names            string  `json:"names"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Anniversary      *string `json:"anniversary,omitempty"`
	Preferences      string  `json:"preferences,omitempty"`
	Budget           string  `json:"budget"`
}
