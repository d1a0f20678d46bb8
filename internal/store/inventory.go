package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockpilehq/stockpile/internal/apperr"
	"github.com/stockpilehq/stockpile/internal/model"
)

// ListInventoryEntries returns the full stock ledger in insertion order.
// An empty ledger is an empty slice, not an error.
func ListInventoryEntries(ctx context.Context, db *sql.DB) ([]model.InventoryEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_id, product_name, stock_in, stock_out, created_at
		 FROM inventory_entries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing inventory entries: %w", err)
	}
	defer rows.Close()

	var entries []model.InventoryEntry
	for rows.Next() {
		var e model.InventoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.StockIn, &e.StockOut, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetProductLedger returns ledger entries for one product, newest first.
func GetProductLedger(ctx context.Context, db *sql.DB, productID int64) ([]model.InventoryEntry, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_id, product_name, stock_in, stock_out, created_at
		 FROM inventory_entries WHERE product_id = ? ORDER BY id DESC`, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting product ledger: %w", err)
	}
	defer rows.Close()

	var entries []model.InventoryEntry
	for rows.Next() {
		var e model.InventoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.StockIn, &e.StockOut, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inventory entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ApplyStockAdjustment applies a single stock delta to a product and appends
// the matching ledger entry. The existence, active, direction, and stock
// checks run in this order inside one transaction, so each failure is
// distinct and no partial effect is ever visible. Exactly one of stockIn and
// stockOut must be non-zero.
func ApplyStockAdjustment(ctx context.Context, db *sql.DB, productID int64, stockIn, stockOut int) (*model.InventoryEntry, error) {
	if stockIn < 0 || stockOut < 0 {
		return nil, apperr.New(apperr.KindValidation, "stock values must not be negative")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var name string
	var stock int
	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT name, stock, active FROM products WHERE id = ?`, productID,
	).Scan(&name, &stock, &active)
	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.KindNotFound, "product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("reading product: %w", err)
	}

	if !active {
		return nil, apperr.New(apperr.KindValidation, "product is deactivated")
	}

	switch {
	case stockIn > 0 && stockOut > 0:
		return nil, apperr.New(apperr.KindValidation, "select only one stock attribute to update")
	case stockIn == 0 && stockOut == 0:
		return nil, apperr.New(apperr.KindValidation, "please add value to the stocks")
	}

	newStock := stock + stockIn
	if stockOut > 0 {
		if stock < stockOut {
			return nil, apperr.New(apperr.KindValidation, "insufficient stock")
		}
		newStock = stock - stockOut
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newStock, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating product stock: %w", err)
	}

	// Snapshot the product name; the ledger is not rewritten on renames.
	result, err := tx.ExecContext(ctx,
		`INSERT INTO inventory_entries (product_id, product_name, stock_in, stock_out)
		 VALUES (?, ?, ?, ?)`,
		productID, name, stockIn, stockOut,
	)
	if err != nil {
		return nil, fmt.Errorf("appending inventory entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing stock adjustment: %w", err)
	}

	entryID, _ := result.LastInsertId()
	return GetInventoryEntry(ctx, db, entryID)
}

// GetInventoryEntry returns a ledger entry by ID.
func GetInventoryEntry(ctx context.Context, db *sql.DB, id int64) (*model.InventoryEntry, error) {
	e := &model.InventoryEntry{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_id, product_name, stock_in, stock_out, created_at
		 FROM inventory_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.ProductID, &e.ProductName, &e.StockIn, &e.StockOut, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting inventory entry: %w", err)
	}
	return e, nil
}
