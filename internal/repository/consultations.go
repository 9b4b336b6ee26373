package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pairline/pairline/internal/model"
)

// ConsultationsRepository defines persistence for the consultations table.
type ConsultationsRepository interface {
	Insert(ctx context.Context, c model.Consultation) (int64, error)
	List(ctx context.Context, status model.ConsultationStatus, limit, offset int) ([]model.Consultation, error)
}

type ConsultationsRepositoryImpl struct {
	db *sqlx.DB
}

func NewConsultationsRepository(db *sqlx.DB) *ConsultationsRepositoryImpl {
	return &ConsultationsRepositoryImpl{db: db}
}

var _ ConsultationsRepository = (*ConsultationsRepositoryImpl)(nil)

// Insert creates a consultation row with status=pending and returns the
// generated identifier.
func (r *ConsultationsRepositoryImpl) Insert(ctx context.Context, c model.Consultation) (int64, error) {
	const q = `
		INSERT INTO consultations
		    (relationship_type, names, email, phone, anniversary, preferences, budget, status, created_at, updated_at)
		VALUES
		    (?, ?, ?, ?, ?, ?, ?, 'pending', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	res, err := r.db.ExecContext(ctx, q,
		c.RelationshipType, c.Names, c.Email, c.Phone, c.Anniversary, c.Preferences, c.Budget,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns consultations newest-first, optionally filtered by status.
func (r *ConsultationsRepositoryImpl) List(ctx context.Context, status model.ConsultationStatus, limit, offset int) ([]model.Consultation, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	q := `
		SELECT id, relationship_type, names, email, phone, anniversary, preferences, budget, status, created_at, updated_at
		FROM consultations
	`
	args := []any{}

	if status != "" {
		q += " WHERE status = ?"
		args = append(args, status.String())
	}

	q += " ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows := []model.Consultation{}
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
