package integration

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/auth"
	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
	"github.com/avdeev/go-shop-server/internal/store"
)

func createTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}
	user, err := store.CreateUser(context.Background(), db, "Test User", email, hash)
	if err != nil {
		t.Fatalf("Create user %s: %v", email, err)
	}
	return user
}

func createTestProduct(t *testing.T, db *sql.DB, name string, price int64, stock int) *models.Product {
	t.Helper()

	product, err := store.CreateProduct(context.Background(), db, name, nil,
		decimal.NewFromInt(price), stock, nil, nil)
	if err != nil {
		t.Fatalf("Create product %s: %v", name, err)
	}
	return product
}

func TestAddCartItemCreatesCartLazily(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "cart1@example.com")
	product := createTestProduct(t, db, "Laptop", 50000, 10)

	items, err := store.GetCartItems(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("Get cart items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart before first add, got %d items", len(items))
	}

	item, err := store.AddCartItem(ctx, db, user.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("Add cart item: %v", err)
	}
	if item.Name != "Laptop" {
		t.Errorf("Expected denormalized product name, got %s", item.Name)
	}
	if !item.Price.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Expected denormalized price 50000, got %s", item.Price)
	}
	if item.Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", item.Quantity)
	}
}

func TestAddCartItemSameProductTwiceMakesTwoLines(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "cart2@example.com")
	product := createTestProduct(t, db, "Smartphone", 25000, 15)

	if _, err := store.AddCartItem(ctx, db, user.ID, product.ID, 1); err != nil {
		t.Fatalf("First add: %v", err)
	}
	if _, err := store.AddCartItem(ctx, db, user.ID, product.ID, 1); err != nil {
		t.Fatalf("Second add: %v", err)
	}

	items, err := store.GetCartItems(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("Get cart items: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected two separate lines, got %d", len(items))
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "cart3@example.com")

	_, err := store.AddCartItem(ctx, db, user.ID, 99999, 1)
	if err != database.ErrProductNotFound {
		t.Errorf("Expected product not found, got: %v", err)
	}

	items, err := store.GetCartItems(ctx, db, user.ID)
	if err != nil {
		t.Fatalf("Get cart items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Cart must be unchanged after failed add, got %d items", len(items))
	}
}

func TestRemoveCartItemOwnershipCheck(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	product := createTestProduct(t, db, "Sneakers", 4000, 25)

	item, err := store.AddCartItem(ctx, db, owner.ID, product.ID, 1)
	if err != nil {
		t.Fatalf("Add cart item: %v", err)
	}

	if err := store.RemoveCartItem(ctx, db, other.ID, item.ID); err != database.ErrCartItemNotFound {
		t.Errorf("Expected not found for foreign cart item, got: %v", err)
	}

	items, err := store.GetCartItems(ctx, db, owner.ID)
	if err != nil {
		t.Fatalf("Get cart items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Item must survive a foreign delete attempt, got %d items", len(items))
	}

	if err := store.RemoveCartItem(ctx, db, owner.ID, item.ID); err != nil {
		t.Fatalf("Owner remove: %v", err)
	}

	items, err = store.GetCartItems(ctx, db, owner.ID)
	if err != nil {
		t.Fatalf("Get cart items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty cart after owner remove, got %d items", len(items))
	}
}
