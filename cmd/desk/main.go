package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/srgjo27/movie_ticket/internal/adapter/handler"
	"github.com/srgjo27/movie_ticket/internal/adapter/repository/memory"
	"github.com/srgjo27/movie_ticket/internal/core/services"
	"github.com/srgjo27/movie_ticket/internal/platform/config"
	"github.com/srgjo27/movie_ticket/internal/platform/logger"
	"github.com/srgjo27/movie_ticket/internal/platform/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(os.Stderr, cfg.LogLevel)

	ctx := context.Background()

	movieRepo := memory.NewMovieRepository()
	bookingRepo := memory.NewBookingRepository()

	bookingService := services.NewBookingService(movieRepo, bookingRepo, appLogger, services.Config{
		SeatRows: cfg.SeatRows,
		SeatCols: cfg.SeatCols,
	})

	if cfg.SeedCatalog {
		if err := seed.Load(ctx, bookingService); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	auth, err := handler.NewAdminAuthenticator(cfg.AdminUsername, cfg.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to set up admin login: %v", err)
	}

	desk := handler.NewDesk(bookingService, auth, appLogger, os.Stdin, os.Stdout)

	appLogger.Info("desk open",
		slog.Int("seat_rows", cfg.SeatRows),
		slog.Int("seat_cols", cfg.SeatCols),
		slog.Bool("seeded", cfg.SeedCatalog),
	)

	if err := desk.Run(ctx); err != nil {
		log.Fatalf("Desk stopped: %v", err)
	}

	appLogger.Info("desk closed")
}
