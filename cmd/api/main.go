package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/avdeev/go-shop-server/internal/auth"
	"github.com/avdeev/go-shop-server/internal/config"
	"github.com/avdeev/go-shop-server/internal/database"
	"github.com/avdeev/go-shop-server/internal/migrate"
	"github.com/avdeev/go-shop-server/internal/routes"
	"github.com/avdeev/go-shop-server/internal/seed"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	// Prices and totals render as JSON numbers, matching the public API.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to database")
	}
	defer db.Close()

	logger.Info().Msg("connected to database")

	if cfg.Demo.Reset {
		if err := resetDemoData(cfg, db); err != nil {
			logger.Fatal().Err(err).Msg("demo reset")
		}
		logger.Warn().Msg("schema dropped, recreated and seeded with demo data")
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	routes.Register(r, db, tokens)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

// resetDemoData wipes and rebuilds the schema, then loads the sample
// dataset. Destructive; gated behind DEMO_RESET.
func resetDemoData(cfg *config.Config, db *sql.DB) error {
	if _, err := migrate.Run(db, cfg.Database.MigrationsDir, "down"); err != nil {
		return err
	}
	if _, err := migrate.Run(db, cfg.Database.MigrationsDir, "up"); err != nil {
		return err
	}
	return seed.InsertSampleData(context.Background(), db)
}
