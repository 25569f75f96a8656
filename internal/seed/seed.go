// Package seed loads the demo dataset. It is only reachable through the
// DEMO_RESET bootstrap path, which drops and recreates the schema first.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avdeev/go-shop-server/internal/auth"
)

func InsertSampleData(ctx context.Context, db *sql.DB) error {
	if err := insertUsers(ctx, db); err != nil {
		return err
	}

	categories, err := insertCategories(ctx, db)
	if err != nil {
		return err
	}

	if err := insertProducts(ctx, db, categories); err != nil {
		return err
	}

	return insertActivity(ctx, db)
}

func insertUsers(ctx context.Context, db *sql.DB) error {
	// Everyone in the demo logs in with the same password.
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := []struct {
		name  string
		email string
		role  string
	}{
		{"Ivan Ivanov", "ivanov@example.com", "buyer"},
		{"Maria Petrova", "petrova@example.com", "buyer"},
		{"Alexey Sidorov", "sidorov@example.com", "administrator"},
		{"Natalia Smirnova", "smirnova@example.com", "buyer"},
		{"Dmitry Kuznetsov", "kuznetsov@example.com", "buyer"},
		{"Olga Vasilieva", "vasilieva@example.com", "buyer"},
		{"Ekaterina Zaytseva", "zaytseva@example.com", "buyer"},
		{"Igor Belyaev", "belyaev@example.com", "buyer"},
		{"Marina Orlova", "orlova@example.com", "buyer"},
		{"Yuri Mikhaylov", "mikhaylov@example.com", "administrator"},
		{"Tatiana Fedorova", "fedorova@example.com", "buyer"},
		{"Konstantin Solovyov", "solovyov@example.com", "buyer"},
	}

	for _, u := range users {
		_, err := db.ExecContext(ctx,
			`INSERT INTO users (name, email, password, role)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (email) DO NOTHING`,
			u.name, u.email, hash, u.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	return nil
}

func insertCategories(ctx context.Context, db *sql.DB) (map[string]int64, error) {
	ids := make(map[string]int64)

	roots := []string{"Electronics", "Clothing", "Shoes", "Home Goods", "Kids Goods"}
	for _, name := range roots {
		id, err := upsertCategory(ctx, db, name, nil)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}

	children := []struct {
		name   string
		parent string
	}{
		{"Computers", "Electronics"},
		{"Smartphones", "Electronics"},
		{"TVs", "Electronics"},
		{"Men's Clothing", "Clothing"},
		{"Women's Clothing", "Clothing"},
		{"Sports Shoes", "Shoes"},
		{"Casual Shoes", "Shoes"},
		{"Furniture", "Home Goods"},
		{"Decor", "Home Goods"},
		{"Kitchen", "Home Goods"},
		{"Toys", "Kids Goods"},
		{"Kids Clothing", "Kids Goods"},
	}
	for _, child := range children {
		parentID := ids[child.parent]
		id, err := upsertCategory(ctx, db, child.name, &parentID)
		if err != nil {
			return nil, err
		}
		ids[child.name] = id
	}

	return ids, nil
}

func upsertCategory(ctx context.Context, db *sql.DB, name string, parentID *int64) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO categories (name, parent_id) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name, parentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed category %s: %w", name, err)
	}
	return id, nil
}

func insertProducts(ctx context.Context, db *sql.DB, categories map[string]int64) error {
	products := []struct {
		name        string
		description string
		price       string
		stock       int
		category    string
		attributes  string
	}{
		{"Laptop", "Powerful laptop for work and games", "50000.00", 10, "Computers", `{"color": "black", "processor": "Intel i7", "ram": "16GB"}`},
		{"Smartphone", "Modern smartphone with a great camera", "25000.00", 15, "Smartphones", `{"color": "white", "camera": "12MP", "battery": "4000mAh"}`},
		{"TV", "Ultra HD television with Smart TV support", "35000.00", 8, "TVs", `{"size": "55 inch", "type": "LED", "resolution": "4K"}`},
		{"T-Shirt", "Stylish men's t-shirt", "1500.00", 50, "Men's Clothing", `{"size": "M", "color": "blue"}`},
		{"Dress", "Elegant dress for special occasions", "3000.00", 30, "Women's Clothing", `{"size": "S", "color": "red"}`},
		{"Sneakers", "Comfortable sneakers for sports", "4000.00", 25, "Sports Shoes", `{"size": "42", "color": "black"}`},
		{"Sandals", "Summer sandals for leisure", "2000.00", 40, "Casual Shoes", `{"size": "38", "color": "beige"}`},
		{"Armchair", "Comfortable office armchair", "8000.00", 15, "Furniture", `{"color": "black", "material": "leather"}`},
		{"Bed", "Comfortable double bed with mattress", "25000.00", 20, "Furniture", `{"material": "wood", "size": "King"}`},
		{"Toy Robot", "Interactive robot for kids", "1500.00", 50, "Toys", `{"battery": "AA", "color": "red"}`},
		{"Kids T-Shirt", "Bright t-shirt for kids", "800.00", 60, "Kids Clothing", `{"size": "L", "color": "light blue"}`},
	}

	for _, p := range products {
		_, err := db.ExecContext(ctx,
			`INSERT INTO products (name, description, price, stock, category_id, attributes)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (name) DO NOTHING`,
			p.name, p.description, p.price, p.stock, categories[p.category], p.attributes)
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.name, err)
		}
	}

	return nil
}

func insertActivity(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO cart (user_id)
		VALUES (1), (2), (3), (4), (5), (6), (7), (8), (9), (10);

		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES
			(1, 1, 1), (1, 2, 2), (2, 3, 1), (2, 4, 3), (3, 5, 1),
			(3, 6, 1), (4, 7, 1), (4, 8, 2), (5, 9, 1), (6, 10, 1),
			(7, 11, 2);

		INSERT INTO orders (user_id, total_amount, status, payment_id)
		VALUES
			(1, 55000.00, 'pending', 'payment_1'),
			(2, 70000.00, 'shipped', 'payment_2'),
			(3, 30000.00, 'delivered', 'payment_3'),
			(4, 12000.00, 'pending', 'payment_4'),
			(5, 10000.00, 'shipped', 'payment_5'),
			(6, 8000.00, 'delivered', 'payment_6'),
			(7, 25000.00, 'pending', 'payment_7'),
			(8, 20000.00, 'shipped', 'payment_8'),
			(9, 15000.00, 'delivered', 'payment_9'),
			(10, 40000.00, 'pending', 'payment_10');

		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES
			(1, 1, 1, 50000.00), (1, 2, 2, 1500.00),
			(2, 3, 1, 35000.00), (2, 4, 3, 1500.00),
			(3, 5, 1, 3000.00), (3, 6, 1, 4000.00),
			(4, 7, 1, 2000.00), (4, 8, 2, 1000.00),
			(5, 9, 1, 8000.00), (6, 10, 1, 1500.00),
			(7, 11, 2, 1500.00);

		INSERT INTO user_logs (user_id, action, product_id)
		VALUES
			(1, 'added product to cart', 1), (1, 'proceeded to checkout', NULL),
			(2, 'viewed product', 3), (2, 'added product to cart', 4),
			(3, 'removed product from cart', 5), (4, 'proceeded to checkout', NULL),
			(5, 'added product to cart', 7), (6, 'viewed product', 9),
			(7, 'added product to cart', 11), (8, 'removed product from cart', 10);

		INSERT INTO recommendations (user_id, product_id)
		VALUES
			(1, 2), (1, 3), (2, 4), (3, 5),
			(4, 6), (5, 7), (6, 8), (7, 9),
			(8, 10), (9, 11), (10, 1)`)
	if err != nil {
		return fmt.Errorf("seed activity: %w", err)
	}

	return nil
}
