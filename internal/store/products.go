package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stockpilehq/stockpile/internal/model"
)

// CreateProduct creates a new product with an initial stock level.
func CreateProduct(ctx context.Context, db *sql.DB, name string, stock int) (*model.Product, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO products (name, stock) VALUES (?, ?)`,
		name, stock,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting product id: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product by ID, active or not. Returns nil when the
// product does not exist.
func GetProduct(ctx context.Context, db *sql.DB, id int64) (*model.Product, error) {
	p := &model.Product{}
	var imageMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, stock, active, image_mime, created_at, updated_at
		 FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Stock, &p.Active, &imageMime, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	p.ImageMime = imageMime.String
	return p, nil
}

// ListProducts returns all products, active ones first.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, stock, active, image_mime, created_at, updated_at
		 FROM products ORDER BY active DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var imageMime sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Active, &imageMime, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.ImageMime = imageMime.String
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListActiveProductSummaries returns the {id, name, stock} projection of
// every active product, for the inventory view.
func ListActiveProductSummaries(ctx context.Context, db *sql.DB) ([]model.ProductSummary, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, stock FROM products WHERE active = 1 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing active products: %w", err)
	}
	defer rows.Close()

	var summaries []model.ProductSummary
	for rows.Next() {
		var s model.ProductSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Stock); err != nil {
			return nil, fmt.Errorf("scanning product summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// UpdateProductName renames a product. Ledger entries keep the old name.
func UpdateProductName(ctx context.Context, db *sql.DB, id int64, name string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return fmt.Errorf("updating product name: %w", err)
	}
	return nil
}

// DeactivateProduct soft-deletes a product. Deactivated products reject
// further stock adjustments but stay visible for audit.
func DeactivateProduct(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivating product: %w", err)
	}
	return nil
}

// SetProductImage sets a product's image data.
func SetProductImage(ctx context.Context, db *sql.DB, id int64, image []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET image = ?, image_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting product image: %w", err)
	}
	return nil
}

// GetProductImage returns a product's image data and MIME type.
func GetProductImage(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM products WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product image: %w", err)
	}
	return image, mime.String, nil
}
