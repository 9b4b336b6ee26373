package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pairline/pairline/internal/model"
)

// NumbersRepository reads the sellable phone-number inventory.
type NumbersRepository interface {
	SearchAvailable(ctx context.Context, pattern, areaCode string, limit int) ([]model.PhoneNumber, error)
}

type NumbersRepositoryImpl struct {
	db *sqlx.DB
}

func NewNumbersRepository(db *sqlx.DB) *NumbersRepositoryImpl {
	return &NumbersRepositoryImpl{db: db}
}

var _ NumbersRepository = (*NumbersRepositoryImpl)(nil)

// SearchAvailable lists available numbers, optionally filtered by pattern
// classification and by area-code prefix over the number string.
func (r *NumbersRepositoryImpl) SearchAvailable(ctx context.Context, pattern, areaCode string, limit int) ([]model.PhoneNumber, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	q := `
		SELECT id, number, pattern_type, customer_id, partner_number_id, status, purchase_price, monthly_fee, created_at
		FROM phone_numbers
		WHERE status = 'available'
	`
	args := []any{}

	if pattern != "" {
		q += " AND pattern_type = ?"
		args = append(args, pattern)
	}
	if areaCode != "" {
		q += ` AND number LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(areaCode)+"%")
	}

	q += " ORDER BY id LIMIT ?"
	args = append(args, limit)

	rows := []model.PhoneNumber{}
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// escapeLike keeps user input from acting as LIKE wildcards.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
