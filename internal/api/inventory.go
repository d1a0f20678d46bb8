package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/stockpilehq/stockpile/internal/model"
	"github.com/stockpilehq/stockpile/internal/rules"
)

// InventoryHandler handles the stock ledger and inventory view endpoints.
type InventoryHandler struct {
	DB *sql.DB
}

type adjustStockRequest struct {
	ProductID int64 `json:"product_id"`
	StockIn   int   `json:"stock_in"`
	StockOut  int   `json:"stock_out"`
}

// List handles GET /api/inventory. The full ledger is public.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := rules.ListLedger(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list inventory", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list inventory")
		return
	}
	if entries == nil {
		entries = []model.InventoryEntry{}
	}
	jsonResponse(w, http.StatusOK, entries)
}

// View handles GET /api/inventory/view: current stock per active product.
func (h *InventoryHandler) View(w http.ResponseWriter, r *http.Request) {
	summaries, err := rules.InventoryView(r.Context(), h.DB, CallerRole(r.Context()))
	if err != nil {
		ruleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, summaries)
}

// Adjust handles POST /api/inventory: a single stock-in or stock-out
// movement against one product.
func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := rules.AdjustStock(r.Context(), h.DB, req.ProductID, req.StockIn, req.StockOut, CallerRole(r.Context()))
	if err != nil {
		ruleError(w, err)
		return
	}

	slog.Info("stock adjusted", "product", entry.ProductID, "in", entry.StockIn, "out", entry.StockOut)
	jsonResponse(w, http.StatusCreated, entry)
}
