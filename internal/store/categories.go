package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/models"
)

// CreateCategory inserts a category, optionally under a parent. Nothing
// checks the parent chain for cycles; the tree shape is the caller's problem.
func CreateCategory(ctx context.Context, db *sql.DB, name string, parentID *int64) (*models.Category, error) {
	category := &models.Category{}

	query := `
		INSERT INTO categories (name, parent_id)
		VALUES ($1, $2)
		RETURNING id, name, parent_id`

	err := db.QueryRowContext(ctx, query, name, parentID).Scan(
		&category.ID,
		&category.Name,
		&category.ParentID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, database.ErrDuplicateName
		}
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func ListCategories(ctx context.Context, db *sql.DB) ([]models.Category, error) {
	query := `SELECT id, name, parent_id FROM categories ORDER BY id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		err := rows.Scan(&category.ID, &category.Name, &category.ParentID)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return categories, nil
}
