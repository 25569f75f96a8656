package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "purchase").Logger()

// PaymentInfo is the simulated payment capture. Only the expiration format
// is ever validated; the card number and CVV are accepted as-is.
type PaymentInfo struct {
	Pan            string          `json:"pan"`
	CVV            string          `json:"cvv"`
	ExpirationDate string          `json:"expiration_date"`
	UserID         int64           `json:"user_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// expirationPattern accepts MM/YY with a real month. "1/25", "13/25" and
// "13-25" are all rejected.
var expirationPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

var ErrInvalidExpiration = errors.New("invalid expiration date format, use MM/YY")

func ValidateExpiration(expirationDate string) error {
	if !expirationPattern.MatchString(expirationDate) {
		return ErrInvalidExpiration
	}
	return nil
}

// paymentReference derives the stored payment id from the card number.
// No Luhn check, no gateway call; this is a demo capture.
func paymentReference(pan string) string {
	last4 := pan
	if len(pan) > 4 {
		last4 = pan[len(pan)-4:]
	}
	return "payment_" + last4
}

// Purchase converts the user's cart into an order in one transaction:
// create a pending order with the caller-supplied total, copy every cart
// line into order_items at the product's current price, then clear the
// cart_items (the cart row stays for reuse). Any failure after validation
// rolls the whole thing back and surfaces a generic payment error; the
// cause is logged here and never returned to the caller.
//
// An empty cart is not rejected: it commits an order with zero items.
// Stock is not decremented.
func Purchase(ctx context.Context, db *sql.DB, info PaymentInfo) (int64, error) {
	if err := ValidateExpiration(info.ExpirationDate); err != nil {
		return 0, err
	}

	var orderID int64

	err := database.WithTransaction(ctx, db, database.DefaultTxOptions(), func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO orders (user_id, total_amount, status, payment_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			info.UserID, info.TotalAmount, models.OrderStatusPending, paymentReference(info.Pan)).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT ci.product_id, ci.quantity, p.price
			 FROM cart_items ci
			 JOIN cart c ON ci.cart_id = c.id
			 JOIN products p ON ci.product_id = p.id
			 WHERE c.user_id = $1`,
			info.UserID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}
		defer rows.Close()

		type cartLine struct {
			productID int64
			quantity  int
			price     decimal.Decimal
		}

		var lines []cartLine
		for rows.Next() {
			var line cartLine
			if err := rows.Scan(&line.productID, &line.quantity, &line.price); err != nil {
				return fmt.Errorf("scan cart line: %w", err)
			}
			lines = append(lines, line)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("rows error: %w", err)
		}
		rows.Close()

		for _, line := range lines {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, price)
				 VALUES ($1, $2, $3, $4)`,
				orderID, line.productID, line.quantity, line.price)
			if err != nil {
				return fmt.Errorf("copy cart line: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			`DELETE FROM cart_items
			 WHERE cart_id IN (SELECT id FROM cart WHERE user_id = $1)`,
			info.UserID)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("user_id", info.UserID).Msg("purchase failed")
		return 0, database.ErrPaymentFailed
	}

	return orderID, nil
}
