package rules

import (
	"context"
	"testing"

	"github.com/stockpilehq/stockpile/internal/apperr"
	"github.com/stockpilehq/stockpile/internal/db"
	"github.com/stockpilehq/stockpile/internal/model"
	"github.com/stockpilehq/stockpile/internal/store"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		allowed []model.Role
		wantErr bool
	}{
		{"admin allowed", model.RoleAdmin, []model.Role{model.RoleAdmin, model.RoleManager}, false},
		{"manager allowed", model.RoleManager, []model.Role{model.RoleAdmin, model.RoleManager}, false},
		{"customer rejected", model.RoleCustomer, []model.Role{model.RoleAdmin, model.RoleManager}, true},
		{"empty role rejected", model.RoleNone, []model.Role{model.RoleAdmin}, true},
		{"customer-only list", model.RoleCustomer, []model.Role{model.RoleCustomer}, false},
		{"admin not in customer list", model.RoleAdmin, []model.Role{model.RoleCustomer}, true},
	}

	for _, tt := range tests {
		err := Authorize(tt.role, tt.allowed...)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Authorize(%q) error = %v, wantErr %v", tt.name, tt.role, err, tt.wantErr)
		}
		if err != nil && !apperr.Is(err, apperr.KindUnauthorized) {
			t.Errorf("%s: expected unauthorized kind, got %v", tt.name, err)
		}
	}
}

func TestAdjustStockAuthorization(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	product, _ := store.CreateProduct(ctx, database, "Widget", 10)

	// Customer is rejected before any product check happens.
	_, err := AdjustStock(ctx, database, product.ID, 5, 0, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// A missing product is also unauthorized for a customer, not not-found.
	_, err = AdjustStock(ctx, database, 42, 5, 0, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized before not-found, got %v", err)
	}

	// Manager succeeds.
	entry, err := AdjustStock(ctx, database, product.ID, 5, 0, model.RoleManager)
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if entry.StockIn != 5 {
		t.Errorf("expected entry in=5, got %d", entry.StockIn)
	}

	got, _ := store.GetProduct(ctx, database, product.ID)
	if got.Stock != 15 {
		t.Errorf("expected stock 15, got %d", got.Stock)
	}
}

func TestAdjustStockInsufficientScenario(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Product with stock 10; stock-out of 12 fails and changes nothing.
	product, _ := store.CreateProduct(ctx, database, "Widget", 10)

	_, err := AdjustStock(ctx, database, product.ID, 0, 12, model.RoleAdmin)
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "insufficient stock" {
		t.Errorf("expected 'insufficient stock', got %q", err.Error())
	}

	got, _ := store.GetProduct(ctx, database, product.ID)
	if got.Stock != 10 {
		t.Errorf("expected stock to remain 10, got %d", got.Stock)
	}
	entries, _ := store.ListInventoryEntries(ctx, database)
	if len(entries) != 0 {
		t.Errorf("expected no ledger entries, got %d", len(entries))
	}
}

func TestInventoryViewEmptyIsError(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := InventoryView(ctx, database, model.RoleAdmin)
	if !apperr.Is(err, apperr.KindEmptyResult) {
		t.Fatalf("expected empty-result error, got %v", err)
	}

	// The ledger listing, by contrast, returns an empty slice.
	entries, err := ListLedger(ctx, database)
	if err != nil {
		t.Fatalf("ListLedger: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestInventoryViewExcludesInactive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	store.CreateProduct(ctx, database, "Active", 3)
	inactive, _ := store.CreateProduct(ctx, database, "Gone", 7)
	store.DeactivateProduct(ctx, database, inactive.ID)

	summaries, err := InventoryView(ctx, database, model.RoleManager)
	if err != nil {
		t.Fatalf("InventoryView: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Name != "Active" {
		t.Errorf("unexpected view: %+v", summaries)
	}

	_, err = InventoryView(ctx, database, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("expected unauthorized for customer, got %v", err)
	}
}

func TestListOrdersEmptyIsError(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := ListOrders(ctx, database, model.RoleAdmin)
	if !apperr.Is(err, apperr.KindEmptyResult) {
		t.Fatalf("expected empty-result error, got %v", err)
	}

	store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	summaries, err := ListOrders(ctx, database, model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("expected 1 summary, got %d", len(summaries))
	}
}

func TestGetOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	got, err := GetOrder(ctx, database, order.ID, model.RoleManager)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.CustomerName != "Alice" {
		t.Errorf("expected customer 'Alice', got %q", got.CustomerName)
	}

	_, err = GetOrder(ctx, database, 42, model.RoleManager)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not-found, got %v", err)
	}

	_, err = GetOrder(ctx, database, order.ID, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("expected unauthorized for customer, got %v", err)
	}
}

func TestOrderStatusMessage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cancelled := model.OrderStatusCancelled
	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", &cancelled)

	msg, err := OrderStatusMessage(ctx, database, order.ID, model.RoleCustomer)
	if err != nil {
		t.Fatalf("OrderStatusMessage: %v", err)
	}
	if msg != "Order is Cancelled" {
		t.Errorf("expected 'Order is Cancelled', got %q", msg)
	}

	unknown := 99
	odd, _ := store.CreateOrder(ctx, database, "Odd", "Bob", "", &unknown)
	msg, _ = OrderStatusMessage(ctx, database, odd.ID, model.RoleCustomer)
	if msg != "Unknown Status" {
		t.Errorf("expected 'Unknown Status', got %q", msg)
	}
}

func TestOrderStatusMessageExistenceBeforeRole(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	// Missing order: not-found wins even with no role at all.
	_, err := OrderStatusMessage(ctx, database, 42, model.RoleNone)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not-found before role check, got %v", err)
	}

	// Existing order with wrong role: unauthorized.
	_, err = OrderStatusMessage(ctx, database, order.ID, model.RoleAdmin)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("expected unauthorized for admin, got %v", err)
	}
}

func TestUpdateOrderCustomerCancel(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	cancel := model.OrderStatusCancelled
	err := UpdateOrder(ctx, database, order.ID, model.OrderPatch{OrderStatus: &cancel, Fields: 1}, model.RoleCustomer)
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	got, _ := store.GetOrder(ctx, database, order.ID)
	if got.OrderStatus != model.OrderStatusCancelled {
		t.Errorf("expected cancelled, got %d", got.OrderStatus)
	}
}

func TestUpdateOrderCustomerBeyondCancelRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	cancel := model.OrderStatusCancelled
	name := "x"

	// Cancel plus another field falls through to the admin/manager check.
	err := UpdateOrder(ctx, database, order.ID, model.OrderPatch{
		OrderStatus:  &cancel,
		CustomerName: &name,
		Fields:       2,
	}, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	// Any non-cancel status from a customer is rejected too.
	shipped := model.OrderStatusShipped
	err = UpdateOrder(ctx, database, order.ID, model.OrderPatch{OrderStatus: &shipped, Fields: 1}, model.RoleCustomer)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	got, _ := store.GetOrder(ctx, database, order.ID)
	if got.OrderStatus != model.OrderStatusPlacing || got.CustomerName != "Alice" {
		t.Errorf("expected order untouched, got %+v", got)
	}
}

func TestUpdateOrderManagerFullPatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)

	// Arbitrary status integers from a manager are accepted unchecked.
	status := 42
	customer := "Carol"
	err := UpdateOrder(ctx, database, order.ID, model.OrderPatch{
		OrderStatus:  &status,
		CustomerName: &customer,
		Fields:       2,
	}, model.RoleManager)
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}

	got, _ := store.GetOrder(ctx, database, order.ID)
	if got.OrderStatus != 42 || got.CustomerName != "Carol" {
		t.Errorf("unexpected order after patch: %+v", got)
	}
}

func TestUpdateOrderOrdering(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cancel := model.OrderStatusCancelled
	patch := model.OrderPatch{OrderStatus: &cancel, Fields: 1}

	// Not-found wins over the missing role.
	err := UpdateOrder(ctx, database, 42, patch, model.RoleNone)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not-found first, got %v", err)
	}

	order, _ := store.CreateOrder(ctx, database, "Order #1", "Alice", "", nil)
	err = UpdateOrder(ctx, database, order.ID, patch, model.RoleNone)
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("expected unauthorized for missing role, got %v", err)
	}
}
