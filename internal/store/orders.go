package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockpilehq/stockpile/internal/model"
)

// CreateOrder creates a new order in the "placing" state unless the caller
// supplies an explicit status.
func CreateOrder(ctx context.Context, db *sql.DB, orderName, customerName, shippingAddress string, status *int) (*model.Order, error) {
	orderStatus := model.OrderStatusPlacing
	if status != nil {
		orderStatus = *status
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO orders (order_name, customer_name, shipping_address, order_status)
		 VALUES (?, ?, ?, ?)`,
		orderName, customerName, shippingAddress, orderStatus,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting order id: %w", err)
	}

	return GetOrder(ctx, db, id)
}

// GetOrder returns an order by ID, or nil when it does not exist.
func GetOrder(ctx context.Context, db *sql.DB, id int64) (*model.Order, error) {
	o := &model.Order{}
	var address sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, order_name, customer_name, shipping_address, order_status, created_at, updated_at
		 FROM orders WHERE id = ?`, id,
	).Scan(&o.ID, &o.OrderName, &o.CustomerName, &address, &o.OrderStatus, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	o.ShippingAddress = address.String
	return o, nil
}

// ListOrderSummaries returns the {id, order_name, customer_name} projection
// of every order, in insertion order.
func ListOrderSummaries(ctx context.Context, db *sql.DB) ([]model.OrderSummary, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, order_name, customer_name FROM orders ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var summaries []model.OrderSummary
	for rows.Next() {
		var s model.OrderSummary
		if err := rows.Scan(&s.ID, &s.OrderName, &s.CustomerName); err != nil {
			return nil, fmt.Errorf("scanning order summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ApplyOrderPatch overwrites the fields named in the patch and leaves every
// other field untouched. Returns false when the order does not exist.
func ApplyOrderPatch(ctx context.Context, db *sql.DB, id int64, patch model.OrderPatch) (bool, error) {
	query := `UPDATE orders SET updated_at = CURRENT_TIMESTAMP`
	var args []any

	if patch.OrderName != nil {
		query += `, order_name = ?`
		args = append(args, *patch.OrderName)
	}
	if patch.CustomerName != nil {
		query += `, customer_name = ?`
		args = append(args, *patch.CustomerName)
	}
	if patch.ShippingAddress != nil {
		query += `, shipping_address = ?`
		args = append(args, *patch.ShippingAddress)
	}
	if patch.OrderStatus != nil {
		query += `, order_status = ?`
		args = append(args, *patch.OrderStatus)
	}

	query += ` WHERE id = ?`
	args = append(args, id)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("updating order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking order update: %w", err)
	}
	return affected > 0, nil
}
