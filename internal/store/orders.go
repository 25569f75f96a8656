package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
)

// CreateOrder is the generic insert behind POST /orders. It takes the total
// and status straight from the caller and never looks at cart state.
func CreateOrder(ctx context.Context, db *sql.DB, userID int64, totalAmount decimal.Decimal, status string, paymentID *string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, database.ErrInvalidStatus
	}

	order := &models.Order{}

	query := `
		INSERT INTO orders (user_id, total_amount, status, payment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, total_amount, status, payment_id, created_at`

	err := db.QueryRowContext(ctx, query, userID, totalAmount, status, paymentID).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentID,
		&order.CreatedAt,
	)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrUserNotFound
		}
		if database.IsCheckViolation(err) {
			return nil, database.ErrInvalidStatus
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func GetOrder(ctx context.Context, db *sql.DB, id int64) (*models.Order, error) {
	order := &models.Order{}

	query := `
		SELECT id, user_id, total_amount, status, payment_id, created_at
		FROM orders
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentID,
		&order.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	order.Items = items

	return order, nil
}
