package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pairline/pairline/internal/config"
	"github.com/pairline/pairline/internal/db"
	"github.com/pairline/pairline/internal/model"
	"github.com/pairline/pairline/internal/repository"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo number inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewSQLiteConnection(cfg.SQLite.Path, db.SQLiteOpts{
			BusyTimeout: cfg.SQLite.BusyTimeout,
			PingTimeout: cfg.SQLite.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("sqlite open: %w", err)
		}
		defer sqlDB.Close()

		if err := db.Migrate(sqlDB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		log.Println(">> Seeding demo inventory...")

		ctx := context.Background()

		custID, err := seedDemoCustomer(ctx, sqlDB)
		if err != nil {
			return err
		}
		if err := seedNumbers(ctx, sqlDB, custID); err != nil {
			return err
		}
		if err := ensureDemoOrder(ctx, sqlDB, custID); err != nil {
			return err
		}

		log.Println(">> Seed completed")
		return nil
	},
}

func seedDemoCustomer(ctx context.Context, dbx *sqlx.DB) (int64, error) {
	customers := repository.NewCustomersRepository(dbx)
	id, err := customers.UpsertByEmail(ctx, model.Customer{
		Email:            "demo@pairline.example",
		Name:             "Dana & Jordan Demo",
		Phone:            strptr("555-0100"),
		RelationshipType: "couple",
		Anniversary:      strptr("2019-06-21"),
		PartnerEmail:     strptr("partner@pairline.example"),
	})
	if err != nil {
		return 0, fmt.Errorf("seed customer: %w", err)
	}
	return id, nil
}

// seedNumbers inserts a deterministic inventory (idempotent upsert on the
// UNIQUE number). The two assigned rows belong to the demo customer and are
// linked to each other afterwards.
func seedNumbers(ctx context.Context, dbx *sqlx.DB, custID int64) error {
	numbers := []model.PhoneNumber{
		{Number: "4155550140", PatternType: "mirror", Status: model.NumberAvailable, PurchasePrice: 299, MonthlyFee: 9.99},
		{Number: "4155550141", PatternType: "mirror", Status: model.NumberAvailable, PurchasePrice: 299, MonthlyFee: 9.99},
		{Number: "4155551234", PatternType: "sequential", Status: model.NumberAvailable, PurchasePrice: 199, MonthlyFee: 7.99},
		{Number: "4155554321", PatternType: "sequential", Status: model.NumberAvailable, PurchasePrice: 199, MonthlyFee: 7.99},
		{Number: "2125557777", PatternType: "repeating", Status: model.NumberAvailable, PurchasePrice: 499, MonthlyFee: 14.99},
		{Number: "2125558888", PatternType: "repeating", Status: model.NumberAvailable, PurchasePrice: 499, MonthlyFee: 14.99},
		{Number: "3055550202", PatternType: "mirror", Status: model.NumberAvailable, PurchasePrice: 249, MonthlyFee: 8.99},
		{Number: "3055552020", PatternType: "mirror", Status: model.NumberAvailable, PurchasePrice: 249, MonthlyFee: 8.99},
		{Number: "4155559090", PatternType: "mirror", Status: model.NumberAssigned, CustomerID: &custID, PurchasePrice: 349, MonthlyFee: 11.99},
		{Number: "4155550909", PatternType: "mirror", Status: model.NumberAssigned, CustomerID: &custID, PurchasePrice: 349, MonthlyFee: 11.99},
	}

	const q = `
INSERT INTO phone_numbers
    (number, pattern_type, customer_id, status, purchase_price, monthly_fee, created_at)
VALUES
    (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (number) DO UPDATE SET
    pattern_type   = excluded.pattern_type,
    customer_id    = excluded.customer_id,
    status         = excluded.status,
    purchase_price = excluded.purchase_price,
    monthly_fee    = excluded.monthly_fee
`
	tx, err := dbx.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, n := range numbers {
		if _, err := tx.ExecContext(ctx, q,
			n.Number, n.PatternType, n.CustomerID, n.Status.String(), n.PurchasePrice, n.MonthlyFee,
		); err != nil {
			return fmt.Errorf("insert number %q: %w", n.Number, err)
		}
	}

	// link the assigned pair to each other
	const link = `
UPDATE phone_numbers
   SET partner_number_id = (SELECT id FROM phone_numbers WHERE number = ?)
 WHERE number = ?
`
	if _, err := tx.ExecContext(ctx, link, "4155550909", "4155559090"); err != nil {
		return fmt.Errorf("link pair: %w", err)
	}
	if _, err := tx.ExecContext(ctx, link, "4155559090", "4155550909"); err != nil {
		return fmt.Errorf("link pair: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit numbers: %w", err)
	}
	return nil
}

// ensureDemoOrder creates one completed order for the demo customer's
// assigned pair if the customer has no orders yet.
func ensureDemoOrder(ctx context.Context, dbx *sqlx.DB, custID int64) error {
	var ids []int64
	if err := dbx.SelectContext(ctx, &ids,
		`SELECT id FROM phone_numbers WHERE customer_id = ? ORDER BY id`, custID); err != nil {
		return fmt.Errorf("assigned numbers: %w", err)
	}
	encoded, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode number ids: %w", err)
	}

	order := model.Order{
		CustomerID:      custID,
		PackageType:     "matched-pair",
		TotalAmount:     698,
		Status:          "completed",
		PaymentIntentID: "pi_demo_0001",
		PhoneNumberIDs:  string(encoded),
	}

	const q = `
INSERT INTO orders
    (customer_id, package_type, total_amount, status, payment_intent_id, phone_number_ids, created_at, updated_at)
SELECT ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
WHERE NOT EXISTS (SELECT 1 FROM orders WHERE customer_id = ?)
`
	if _, err := dbx.ExecContext(ctx, q,
		order.CustomerID, order.PackageType, order.TotalAmount, order.Status,
		order.PaymentIntentID, order.PhoneNumberIDs, order.CustomerID,
	); err != nil {
		return fmt.Errorf("ensure demo order: %w", err)
	}
	return nil
}

func strptr(s string) *string { return &s }
