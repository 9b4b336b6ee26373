package repository_test

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pairline/pairline/internal/db"
	"github.com/pairline/pairline/internal/model"
	"github.com/pairline/pairline/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dbx, err := sqlx.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	dbx.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbx.Close() })

	if err := db.Migrate(dbx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// idempotence: running the schema twice must not error
	if err := db.Migrate(dbx); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	return dbx
}

func TestConsultationsInsertAndList(t *testing.T) {
	dbx := newTestDB(t)
	repo := repository.NewConsultationsRepository(dbx)
	ctx := context.Background()

	anniv := "2020-02-20"
	rows := []model.Consultation{
		{RelationshipType: "couple", Names: "Alice & Bob", Email: "a@example.com", Phone: "555-0100", Budget: "premium"},
		{RelationshipType: "family", Names: "The Does", Email: "d@example.com", Phone: "555-0101", Budget: "standard", Anniversary: &anniv, Preferences: "matching area codes"},
		{RelationshipType: "couple", Names: "Eve & Frank", Email: "e@example.com", Phone: "555-0102", Budget: "premium"},
	}
	for i, c := range rows {
		id, err := repo.Insert(ctx, c)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if id != int64(i+1) {
			t.Fatalf("insert %d: expected id %d, got %d", i, i+1, id)
		}
	}

	got, err := repo.List(ctx, "", 50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	// newest first
	if got[0].ID != 3 || got[2].ID != 1 {
		t.Errorf("expected ids [3 2 1], got [%d %d %d]", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[2].Status != "pending" {
		t.Errorf("expected default status pending, got %q", got[2].Status)
	}
	if got[2].Anniversary != nil {
		t.Errorf("expected NULL anniversary to stay nil")
	}
	if got[1].Anniversary == nil || *got[1].Anniversary != anniv {
		t.Errorf("anniversary did not round-trip: %v", got[1].Anniversary)
	}

	// limit=1 offset=0 returns only the most recent row
	page, err := repo.List(ctx, "", 1, 0)
	if err != nil {
		t.Fatalf("paged list: %v", err)
	}
	if len(page) != 1 || page[0].ID != 3 {
		t.Fatalf("expected only the most recent row, got %+v", page)
	}

	// unknown status matches nothing
	none, err := repo.List(ctx, model.ConsultationClosed, 50, 0)
	if err != nil {
		t.Fatalf("status list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no closed consultations, got %d", len(none))
	}
}

func TestSubscribersInsertIgnore(t *testing.T) {
	dbx := newTestDB(t)
	repo := repository.NewSubscribersRepository(dbx)
	ctx := context.Background()

	inserted, err := repo.InsertIgnore(ctx, model.Subscriber{Email: "reader@example.com", Source: model.SourceNewsletter})
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if !inserted {
		t.Fatal("first insert reported duplicate")
	}

	inserted, err = repo.InsertIgnore(ctx, model.Subscriber{Email: "reader@example.com", Source: model.SourceDownload})
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if inserted {
		t.Fatal("duplicate insert reported a write")
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one subscriber row, got %d", n)
	}

	// original source survives the ignored duplicate
	var source string
	if err := dbx.Get(&source, `SELECT source FROM email_subscribers WHERE email = ?`, "reader@example.com"); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if source != "newsletter" {
		t.Errorf("expected source newsletter, got %q", source)
	}
}

func seedNumbers(t *testing.T, dbx *sqlx.DB) {
	t.Helper()
	rows := []struct {
		number, pattern, status string
	}{
		{"4155550140", "mirror", "available"},
		{"4155551234", "sequential", "available"},
		{"2125557777", "repeating", "available"},
		{"2125558888", "repeating", "assigned"},
	}
	for _, r := range rows {
		if _, err := dbx.Exec(
			`INSERT INTO phone_numbers (number, pattern_type, status) VALUES (?, ?, ?)`,
			r.number, r.pattern, r.status,
		); err != nil {
			t.Fatalf("seed %s: %v", r.number, err)
		}
	}
}

func TestNumbersSearchAvailable(t *testing.T) {
	dbx := newTestDB(t)
	repo := repository.NewNumbersRepository(dbx)
	ctx := context.Background()
	seedNumbers(t, dbx)

	all, err := repo.SearchAvailable(ctx, "", "", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 available rows, got %d", len(all))
	}
	for _, n := range all {
		if n.Status != model.NumberAvailable {
			t.Errorf("non-available row in results: %+v", n)
		}
	}

	byArea, err := repo.SearchAvailable(ctx, "", "415", 10)
	if err != nil {
		t.Fatalf("area search: %v", err)
	}
	if len(byArea) != 2 {
		t.Fatalf("expected 2 rows with prefix 415, got %d", len(byArea))
	}

	byPattern, err := repo.SearchAvailable(ctx, "repeating", "", 10)
	if err != nil {
		t.Fatalf("pattern search: %v", err)
	}
	if len(byPattern) != 1 || byPattern[0].Number != "2125557777" {
		t.Fatalf("expected the single available repeating number, got %+v", byPattern)
	}

	limited, err := repo.SearchAvailable(ctx, "", "", 1)
	if err != nil {
		t.Fatalf("limited search: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d rows", len(limited))
	}

	// LIKE wildcards in user input must not widen the prefix match
	wild, err := repo.SearchAvailable(ctx, "", "%", 10)
	if err != nil {
		t.Fatalf("wildcard search: %v", err)
	}
	if len(wild) != 0 {
		t.Fatalf(`expected no numbers starting with "%%", got %d`, len(wild))
	}
}

func TestCustomersUpsertByEmail(t *testing.T) {
	dbx := newTestDB(t)
	repo := repository.NewCustomersRepository(dbx)
	ctx := context.Background()

	id1, err := repo.UpsertByEmail(ctx, model.Customer{Email: "demo@example.com", Name: "Dana"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	id2, err := repo.UpsertByEmail(ctx, model.Customer{Email: "demo@example.com", Name: "Dana & Jordan"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("upsert changed the id: %d vs %d", id1, id2)
	}

	var name string
	if err := dbx.Get(&name, `SELECT name FROM customers WHERE id = ?`, id1); err != nil {
		t.Fatalf("read back: %v", err)
	}
	if name != "Dana & Jordan" {
		t.Errorf("expected refreshed name, got %q", name)
	}
}
