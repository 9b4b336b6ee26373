package db

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/001_init.sql
var schema string

// Migrate applies the embedded schema. Every statement is
// CREATE ... IF NOT EXISTS, so running it on every start is safe.
func Migrate(dbx *sqlx.DB) error {
	if _, err := dbx.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
