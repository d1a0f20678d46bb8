package model

import "time"

// InventoryEntry is one immutable line of the stock ledger. Exactly one of
// StockIn/StockOut is non-zero. ProductName is a snapshot taken at write
// time and is not kept in sync with later renames.
type InventoryEntry struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	StockIn     int       `json:"stock_in"`
	StockOut    int       `json:"stock_out"`
	CreatedAt   time.Time `json:"created_at"`
}
