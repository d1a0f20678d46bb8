package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stockpilehq/stockpile/internal/model"
	"github.com/stockpilehq/stockpile/internal/rules"
)

// OrdersHandler handles order endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

type createOrderRequest struct {
	OrderName       string `json:"order_name"`
	CustomerName    string `json:"customer_name"`
	ShippingAddress string `json:"shipping_address"`
	OrderStatus     *int   `json:"order_status"`
}

// List handles GET /api/orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := rules.ListOrders(r.Context(), h.DB, CallerRole(r.Context()))
	if err != nil {
		ruleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, summaries)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := rules.GetOrder(r.Context(), h.DB, id, CallerRole(r.Context()))
	if err != nil {
		ruleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, order)
}

// Status handles GET /api/orders/{id}/status.
func (h *OrdersHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	message, err := rules.OrderStatusMessage(r.Context(), h.DB, id, CallerRole(r.Context()))
	if err != nil {
		ruleError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": message})
}

// Create handles POST /api/orders. Order creation is unguarded.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OrderName == "" || req.CustomerName == "" {
		jsonError(w, http.StatusBadRequest, "order_name and customer_name required")
		return
	}

	order, err := rules.PlaceOrder(r.Context(), h.DB, req.OrderName, req.CustomerName, req.ShippingAddress, req.OrderStatus)
	if err != nil {
		ruleError(w, err)
		return
	}

	slog.Info("order placed", "order", order.ID, "customer", order.CustomerName)
	jsonResponse(w, http.StatusCreated, order)
}

// Update handles PUT /api/orders/{id}. The body is decoded as a key set
// first because the customer-cancel rule depends on exactly which keys the
// caller sent, not just which ones this backend models.
func (h *OrdersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var raw map[string]json.RawMessage
	if err := decodeJSON(r, &raw); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch, err := buildOrderPatch(raw)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := rules.UpdateOrder(r.Context(), h.DB, id, patch, CallerRole(r.Context())); err != nil {
		ruleError(w, err)
		return
	}

	slog.Info("order updated", "order", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "order updated"})
}

func buildOrderPatch(raw map[string]json.RawMessage) (model.OrderPatch, error) {
	patch := model.OrderPatch{Fields: len(raw)}
	for key, value := range raw {
		var err error
		switch key {
		case "order_name":
			err = json.Unmarshal(value, &patch.OrderName)
		case "customer_name":
			err = json.Unmarshal(value, &patch.CustomerName)
		case "shipping_address":
			err = json.Unmarshal(value, &patch.ShippingAddress)
		case "order_status":
			err = json.Unmarshal(value, &patch.OrderStatus)
		}
		if err != nil {
			return model.OrderPatch{}, fmt.Errorf("invalid value for %q", key)
		}
	}
	return patch, nil
}
