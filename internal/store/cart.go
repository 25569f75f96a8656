package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
)

// GetCartItems returns the user's cart lines joined with the current product
// name and price. A user with no cart (or an empty one) gets an empty slice,
// not an error.
func GetCartItems(ctx context.Context, db *sql.DB, userID int64) ([]models.CartItemView, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, p.name, p.price
		FROM cart_items ci
		JOIN cart c ON ci.cart_id = c.id
		JOIN products p ON ci.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY ci.id`

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItemView{}
	for rows.Next() {
		var item models.CartItemView
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.Name,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return items, nil
}

// AddCartItem creates the user's cart row on first use and appends a new
// line. Adding the same product twice makes two lines; lines are never
// merged. The returned view carries the product's current name and price.
func AddCartItem(ctx context.Context, db *sql.DB, userID, productID int64, quantity int) (*models.CartItemView, error) {
	var cartID int64
	err := db.QueryRowContext(ctx, `SELECT id FROM cart WHERE user_id = $1`, userID).Scan(&cartID)
	if err == sql.ErrNoRows {
		err = db.QueryRowContext(ctx,
			`INSERT INTO cart (user_id) VALUES ($1) RETURNING id`,
			userID).Scan(&cartID)
	}
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrUserNotFound
		}
		return nil, fmt.Errorf("get or create cart: %w", err)
	}

	item := &models.CartItemView{}
	err = db.QueryRowContext(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id, cart_id, product_id, quantity`,
		cartID, productID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT name, price FROM products WHERE id = $1`,
		productID).Scan(&item.Name, &item.Price)
	if err != nil {
		return nil, fmt.Errorf("join product: %w", err)
	}

	return item, nil
}

// RemoveCartItem deletes a cart line after checking it belongs to a cart
// owned by this user. A line owned by someone else is indistinguishable from
// a missing one.
func RemoveCartItem(ctx context.Context, db *sql.DB, userID, cartItemID int64) error {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT ci.id
		 FROM cart_items ci
		 JOIN cart c ON ci.cart_id = c.id
		 WHERE ci.id = $1 AND c.user_id = $2`,
		cartItemID, userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return database.ErrCartItemNotFound
		}
		return fmt.Errorf("check cart item ownership: %w", err)
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	return nil
}
