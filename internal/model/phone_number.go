package model

import "time"

type NumberStatus string

const (
	NumberAvailable NumberStatus = "available"
	NumberReserved  NumberStatus = "reserved"
	NumberAssigned  NumberStatus = "assigned"
)

func (s NumberStatus) String() string {
	return string(s)
}

func (s NumberStatus) Valid() bool {
	return s == NumberAvailable || s == NumberReserved || s == NumberAssigned
}

// PhoneNumber is one row of the sellable number inventory. A matched pair
// points at each other through PartnerNumberID.
type PhoneNumber struct {
	ID              int64        `db:"id" json:"id"`
	Number          string       `db:"number" json:"number"` // UNIQUE
	PatternType     string       `db:"pattern_type" json:"patternType"`
	CustomerID      *int64       `db:"customer_id" json:"customerId,omitempty"`
	PartnerNumberID *int64       `db:"partner_number_id" json:"partnerNumberId,omitempty"`
	Status          NumberStatus `db:"status" json:"status"`
	PurchasePrice   float64      `db:"purchase_price" json:"purchasePrice"`
	MonthlyFee      float64      `db:"monthly_fee" json:"monthlyFee"`
	CreatedAt       time.Time    `db:"created_at" json:"createdAt"`
}
