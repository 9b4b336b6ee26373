package model

import "time"

type Order struct {
	ID              int64     `db:"id" json:"id"`
	CustomerID      int64     `db:"customer_id" json:"customerId"`
	PackageType     string    `db:"package_type" json:"packageType"`
	TotalAmount     float64   `db:"total_amount" json:"totalAmount"`
	Status          string    `db:"status" json:"status"`
	PaymentIntentID string    `db:"payment_intent_id" json:"paymentIntentId"`
	PhoneNumberIDs  string    `db:"phone_number_ids" json:"phoneNumberIds"` // JSON array of phone_numbers.id
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
