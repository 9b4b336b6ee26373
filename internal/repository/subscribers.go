package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pairline/pairline/internal/model"
)

// SubscribersRepository defines persistence for the email_subscribers table.
type SubscribersRepository interface {
	// InsertIgnore writes a subscriber unless the email already exists.
	// Returns false when the row was a duplicate and nothing was written.
	InsertIgnore(ctx context.Context, s model.Subscriber) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type SubscribersRepositoryImpl struct {
	db *sqlx.DB
}

func NewSubscribersRepository(db *sqlx.DB) *SubscribersRepositoryImpl {
	return &SubscribersRepositoryImpl{db: db}
}

var _ SubscribersRepository = (*SubscribersRepositoryImpl)(nil)

// InsertIgnore relies on the UNIQUE constraint on email with an explicit
// conflict policy: a duplicate signup is a no-op, not an error.
func (r *SubscribersRepositoryImpl) InsertIgnore(ctx context.Context, s model.Subscriber) (bool, error) {
	const q = `
		INSERT INTO email_subscribers (email, source, status, created_at)
		VALUES (?, ?, 'active', CURRENT_TIMESTAMP)
		ON CONFLICT (email) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, q, s.Email, s.Source.String())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SubscribersRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM email_subscribers`); err != nil {
		return 0, err
	}
	return n, nil
}
