package integration

import (
	"context"
	"testing"

	"github.com/avdeev/go-shop-server/internal/auth"
	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/store"
)

func TestCreateUserNormalizesEmail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	user, err := store.CreateUser(ctx, db, "Ivan", "Ivanov@Example.com", hash)
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	if user.Email != "ivanov@example.com" {
		t.Errorf("Expected lowercased email, got %s", user.Email)
	}
	if user.Role != "buyer" {
		t.Errorf("Expected role buyer, got %s", user.Role)
	}
	if user.Password != "" {
		t.Error("Created user must not carry the password hash")
	}
}

func TestCreateUserDuplicateEmailCaseInsensitive(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	if _, err := store.CreateUser(ctx, db, "First", "A@x.com", hash); err != nil {
		t.Fatalf("Create first user: %v", err)
	}

	_, err = store.CreateUser(ctx, db, "Second", "a@x.com", hash)
	if err != database.ErrDuplicateEmail {
		t.Errorf("Expected duplicate email error, got: %v", err)
	}
}

func TestGetUserByEmailVerifiesPassword(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Hash password: %v", err)
	}

	if _, err := store.CreateUser(ctx, db, "Ivan", "ivanov@example.com", hash); err != nil {
		t.Fatalf("Create user: %v", err)
	}

	user, err := store.GetUserByEmail(ctx, db, "IVANOV@example.com")
	if err != nil {
		t.Fatalf("Get user by email: %v", err)
	}
	if !auth.CheckPassword(user.Password, "password123") {
		t.Error("Stored hash should verify against the original password")
	}

	if _, err := store.GetUserByEmail(ctx, db, "missing@example.com"); err != database.ErrUserNotFound {
		t.Errorf("Expected user not found, got: %v", err)
	}
}
