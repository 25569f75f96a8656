package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
)

func CreateProduct(ctx context.Context, db *sql.DB, name string, description *string, price decimal.Decimal, stock int, categoryID *int64, attributes models.Attributes) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price, stock, category_id, attributes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, stock, category_id, attributes, created_at`

	err := db.QueryRowContext(ctx, query, name, description, price, stock, categoryID, attributes).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.Attributes,
		&product.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, database.ErrDuplicateName
		}
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, db *sql.DB, id int64) (*models.Product, error) {
	product := &models.Product{}

	query := `
		SELECT id, name, description, price, stock, category_id, attributes, created_at
		FROM products
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.CategoryID,
		&product.Attributes,
		&product.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListProducts returns the whole table. The catalog is not paginated.
func ListProducts(ctx context.Context, db *sql.DB) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category_id, attributes, created_at
		FROM products
		ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListRecommendations returns the products an external process has linked to
// the user. Nothing in this server writes recommendation rows.
func ListRecommendations(ctx context.Context, db *sql.DB, userID int64) ([]models.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.attributes, p.created_at
		FROM recommendations r
		JOIN products p ON r.product_id = p.id
		WHERE r.user_id = $1
		ORDER BY p.id`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.CategoryID,
			&product.Attributes,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}
