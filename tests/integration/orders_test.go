package integration

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
	"github.com/avdeev/go-shop-server/internal/store"
)

func TestCreateOrderGeneric(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "orders@example.com")

	paymentID := "payment_4242"
	order, err := store.CreateOrder(ctx, db, user.ID, decimal.NewFromInt(12000), models.OrderStatusShipped, &paymentID)
	if err != nil {
		t.Fatalf("Create order: %v", err)
	}
	if order.Status != models.OrderStatusShipped {
		t.Errorf("Expected shipped, got %s", order.Status)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(12000)) {
		t.Errorf("Expected caller-supplied total 12000, got %s", order.TotalAmount)
	}

	fetched, err := store.GetOrder(ctx, db, order.ID)
	if err != nil {
		t.Fatalf("Get order: %v", err)
	}
	if len(fetched.Items) != 0 {
		t.Errorf("Generic order has no relation to cart state, got %d items", len(fetched.Items))
	}
}

func TestCreateOrderInvalidStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "badstatus@example.com")

	_, err := store.CreateOrder(ctx, db, user.ID, decimal.NewFromInt(100), "cancelled", nil)
	if err != database.ErrInvalidStatus {
		t.Errorf("Expected invalid status error, got: %v", err)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if _, err := store.GetOrder(context.Background(), db, 99999); err != database.ErrOrderNotFound {
		t.Errorf("Expected order not found, got: %v", err)
	}
}
