package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pairline/pairline/internal/model"
)

// CustomersRepository has no HTTP write path: customers are created by the
// (out of scope) order workflow. Only the seed command writes here.
type CustomersRepository interface {
	UpsertByEmail(ctx context.Context, c model.Customer) (int64, error)
}

type CustomersRepositoryImpl struct {
	db *sqlx.DB
}

func NewCustomersRepository(db *sqlx.DB) *CustomersRepositoryImpl {
	return &CustomersRepositoryImpl{db: db}
}

var _ CustomersRepository = (*CustomersRepositoryImpl)(nil)

// UpsertByEmail inserts or refreshes a customer keyed on the UNIQUE email
// and returns its id. Idempotent.
func (r *CustomersRepositoryImpl) UpsertByEmail(ctx context.Context, c model.Customer) (int64, error) {
	const q = `
		INSERT INTO customers
		    (email, name, phone, relationship_type, anniversary, partner_email, created_at, updated_at)
		VALUES
		    (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (email) DO UPDATE SET
		    name              = excluded.name,
		    phone             = excluded.phone,
		    relationship_type = excluded.relationship_type,
		    anniversary       = excluded.anniversary,
		    partner_email     = excluded.partner_email,
		    updated_at        = CURRENT_TIMESTAMP
	`
	if _, err := r.db.ExecContext(ctx, q,
		c.Email, c.Name, c.Phone, c.RelationshipType, c.Anniversary, c.PartnerEmail,
	); err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, `SELECT id FROM customers WHERE email = ?`, c.Email); err != nil {
		return 0, err
	}
	return id, nil
}
