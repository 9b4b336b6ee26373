package model

import "time"

type Customer struct {
	ID               int64     `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"` // UNIQUE
	Name             string    `db:"name" json:"name"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	RelationshipType string    `db:"relationship_type" json:"relationshipType"`
	Anniversary      *string   `db:"anniversary" json:"anniversary,omitempty"`
	PartnerEmail     *string   `db:"partner_email" json:"partnerEmail,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
