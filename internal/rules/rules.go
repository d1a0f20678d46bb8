// Package rules is the business-rule layer between the HTTP handlers and
// the store. Role checks for these operations live here, not in middleware,
// because the check ordering is part of the contract: callers observe which
// failure wins when several apply.
package rules

import (
	"context"
	"database/sql"
	"slices"

	"github.com/stockpilehq/stockpile/internal/apperr"
	"github.com/stockpilehq/stockpile/internal/model"
	"github.com/stockpilehq/stockpile/internal/store"
)

// Authorize fails with an unauthorized error unless role is one of the
// allowed roles. Role strings are parsed to the closed Role type at the
// boundary, so membership here is plain equality.
func Authorize(role model.Role, allowed ...model.Role) error {
	if role == model.RoleNone || !slices.Contains(allowed, role) {
		return apperr.Unauthorized()
	}
	return nil
}

// AdjustStock validates and applies a single stock delta (stock-in XOR
// stock-out) to a product and appends the matching ledger entry. Failure
// order: unauthorized, product not found, product deactivated, ambiguous or
// missing direction, insufficient stock. The mutation and the ledger append
// commit together or not at all.
func AdjustStock(ctx context.Context, db *sql.DB, productID int64, stockIn, stockOut int, role model.Role) (*model.InventoryEntry, error) {
	if err := Authorize(role, model.RoleAdmin, model.RoleManager); err != nil {
		return nil, err
	}
	return store.ApplyStockAdjustment(ctx, db, productID, stockIn, stockOut)
}

// ListLedger returns every inventory ledger entry. Unrestricted; an empty
// ledger is an empty result, not an error.
func ListLedger(ctx context.Context, db *sql.DB) ([]model.InventoryEntry, error) {
	return store.ListInventoryEntries(ctx, db)
}

// InventoryView returns the {id, name, stock} projection of all active
// products. Unlike the ledger listing, an empty view is an error.
func InventoryView(ctx context.Context, db *sql.DB, role model.Role) ([]model.ProductSummary, error) {
	if err := Authorize(role, model.RoleAdmin, model.RoleManager); err != nil {
		return nil, err
	}

	summaries, err := store.ListActiveProductSummaries(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, apperr.New(apperr.KindEmptyResult, "the inventory is empty")
	}
	return summaries, nil
}

// ListOrders returns the {id, order name, customer name} projection of all
// orders. An empty order book is an error, matching the inventory view.
func ListOrders(ctx context.Context, db *sql.DB, role model.Role) ([]model.OrderSummary, error) {
	if err := Authorize(role, model.RoleAdmin, model.RoleManager); err != nil {
		return nil, err
	}

	summaries, err := store.ListOrderSummaries(ctx, db)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, apperr.New(apperr.KindEmptyResult, "the order list is empty")
	}
	return summaries, nil
}

// GetOrder returns a full order record.
func GetOrder(ctx context.Context, db *sql.DB, id int64, role model.Role) (*model.Order, error) {
	if err := Authorize(role, model.RoleAdmin, model.RoleManager); err != nil {
		return nil, err
	}

	order, err := store.GetOrder(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperr.New(apperr.KindNotFound, "order not found")
	}
	return order, nil
}

// OrderStatusMessage returns the display message for an order's status.
// The existence check deliberately precedes the role check: an
// unauthenticated caller can learn whether an order ID exists before being
// rejected. That ordering is inherited behavior, kept until the product
// owner signs off on changing it.
func OrderStatusMessage(ctx context.Context, db *sql.DB, id int64, role model.Role) (string, error) {
	order, err := store.GetOrder(ctx, db, id)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", apperr.New(apperr.KindNotFound, "order not found")
	}

	if err := Authorize(role, model.RoleCustomer); err != nil {
		return "", err
	}

	return model.StatusMessage(order.OrderStatus), nil
}

// PlaceOrder creates a new order. Order placement is unguarded.
func PlaceOrder(ctx context.Context, db *sql.DB, orderName, customerName, shippingAddress string, status *int) (*model.Order, error) {
	return store.CreateOrder(ctx, db, orderName, customerName, shippingAddress, status)
}

// UpdateOrder applies a partial update to an order. A customer may only
// ever cancel: the patch must be exactly a single-field status change to 0.
// Anything else requires admin or manager, who may patch any fields with
// any values, unchecked.
func UpdateOrder(ctx context.Context, db *sql.DB, id int64, patch model.OrderPatch, role model.Role) error {
	order, err := store.GetOrder(ctx, db, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperr.New(apperr.KindNotFound, "order not found")
	}

	if role == model.RoleNone {
		return apperr.Unauthorized()
	}

	if !(patch.IsCustomerCancel() && role == model.RoleCustomer) {
		if err := Authorize(role, model.RoleAdmin, model.RoleManager); err != nil {
			return err
		}
	}

	_, err = store.ApplyOrderPatch(ctx, db, id, patch)
	return err
}
