package store

import (
	"context"
	"testing"

	"github.com/stockpilehq/stockpile/internal/db"
)

func TestCreateAndGetProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	product, err := CreateProduct(ctx, database, "Laptop", 5)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %q", product.Name)
	}
	if product.Stock != 5 {
		t.Errorf("expected stock 5, got %d", product.Stock)
	}
	if !product.Active {
		t.Error("expected new product to be active")
	}

	missing, err := GetProduct(ctx, database, 42)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing product")
	}
}

func TestDeactivateProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	product, _ := CreateProduct(ctx, database, "Delete Me", 0)
	if err := DeactivateProduct(ctx, database, product.ID); err != nil {
		t.Fatalf("DeactivateProduct: %v", err)
	}

	// Deactivated products stay fetchable by ID.
	got, _ := GetProduct(ctx, database, product.ID)
	if got == nil {
		t.Fatal("expected deactivated product to still exist")
	}
	if got.Active {
		t.Error("expected product to be inactive")
	}

	// But they drop out of the active summary view.
	summaries, _ := ListActiveProductSummaries(ctx, database)
	if len(summaries) != 0 {
		t.Errorf("expected 0 active products, got %d", len(summaries))
	}
}

func TestListActiveProductSummaries(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateProduct(ctx, database, "Active", 3)
	inactive, _ := CreateProduct(ctx, database, "Inactive", 7)
	DeactivateProduct(ctx, database, inactive.ID)

	summaries, err := ListActiveProductSummaries(ctx, database)
	if err != nil {
		t.Fatalf("ListActiveProductSummaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	if summaries[0].Name != "Active" || summaries[0].Stock != 3 {
		t.Errorf("unexpected summary: %+v", summaries[0])
	}
}

func TestProductImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	product, _ := CreateProduct(ctx, database, "Photo Product", 0)
	imageData := []byte("fake image data")
	SetProductImage(ctx, database, product.ID, imageData, "image/jpeg")

	data, mime, err := GetProductImage(ctx, database, product.ID)
	if err != nil {
		t.Fatalf("GetProductImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}
