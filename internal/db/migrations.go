package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{
	// Migration 1: audit queries filter the ledger by product, so index it.
	`CREATE INDEX IF NOT EXISTS idx_inventory_entries_product
	     ON inventory_entries(product_id)`,
	// Migration 2: the inventory view only reads active products.
	`CREATE INDEX IF NOT EXISTS idx_products_active
	     ON products(active)`,
}

// Migrate ensures the schema exists and runs all migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
