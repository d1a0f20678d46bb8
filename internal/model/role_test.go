package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{"admin", RoleAdmin},
		{"Admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"Manager", RoleManager},
		{"customer", RoleCustomer},
		{" Customer ", RoleCustomer},
		{"", RoleNone},
		{"root", RoleNone},
		{"user", RoleNone},
	}

	for _, tt := range tests {
		got := ParseRole(tt.input)
		if got != tt.expected {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     Role
		minimum  Role
		expected bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleManager, true},
		{RoleManager, RoleAdmin, false},
		{RoleManager, RoleManager, true},
		{RoleCustomer, RoleManager, false},
		{RoleCustomer, RoleCustomer, true},
		// Unknown roles fail closed on either side.
		{RoleNone, RoleCustomer, false},
		{RoleAdmin, RoleNone, false},
		{RoleNone, RoleNone, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{OrderStatusCancelled, "Order is Cancelled"},
		{OrderStatusPlacing, "Placing Order"},
		{OrderStatusProcessed, "Order Processed"},
		{OrderStatusShipped, "Order Shipped"},
		{OrderStatusDelivery, "Order is out for delivery"},
		{OrderStatusDelivered, "Order has been Delivered"},
		{99, "Unknown Status"},
		{-1, "Unknown Status"},
	}

	for _, tt := range tests {
		if got := StatusMessage(tt.status); got != tt.expected {
			t.Errorf("StatusMessage(%d) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestOrderPatchIsCustomerCancel(t *testing.T) {
	cancel := OrderStatusCancelled
	shipped := OrderStatusShipped
	name := "x"

	tests := []struct {
		name     string
		patch    OrderPatch
		expected bool
	}{
		{"cancel only", OrderPatch{OrderStatus: &cancel, Fields: 1}, true},
		{"other status", OrderPatch{OrderStatus: &shipped, Fields: 1}, false},
		{"cancel plus name", OrderPatch{OrderStatus: &cancel, CustomerName: &name, Fields: 2}, false},
		{"no status", OrderPatch{CustomerName: &name, Fields: 1}, false},
		{"empty", OrderPatch{}, false},
	}

	for _, tt := range tests {
		if got := tt.patch.IsCustomerCancel(); got != tt.expected {
			t.Errorf("%s: IsCustomerCancel() = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
