package main

import (
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/avdeev/go-shop-server/internal/config"
	"github.com/avdeev/go-shop-server/internal/migrate"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/run_migrations.go [up|down]")
	}
	direction := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Ping database: %v", err)
	}

	n, err := migrate.Run(db, cfg.Database.MigrationsDir, direction)
	if err != nil {
		log.Fatalf("Run migrations: %v", err)
	}

	log.Printf("Successfully ran %d migration(s) %s", n, direction)
}
