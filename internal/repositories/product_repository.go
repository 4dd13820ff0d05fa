package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/am-nutrition/storefront/internal/models"
	"github.com/am-nutrition/storefront/internal/utils"
)

// ProductRepository is the minimal contract the catalog snapshot and the
// inventory reconciler need from the remote store: read-all, read-one,
// update the stock field.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

func (r *productRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, category, description, price, image_url, quantity
		FROM products
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var products []models.Product

	for rows.Next() {
		var product models.Product

		err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Description, &product.Price, &product.Image, &product.Quantity)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProductByID returns (nil, nil) when the product does not exist.
func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `
		SELECT id, name, category, description, price, image_url, quantity
		FROM products
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.Category, &product.Description, &product.Price, &product.Image, &product.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products SET quantity = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(dbCtx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("updating quantity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
