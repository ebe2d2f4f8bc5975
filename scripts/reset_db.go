// Скрипт пересоздаёт таблицу listings и заливает в неё seed-набор объявлений.
// Запуск: DATABASE_URL=postgres://... go run scripts/reset_db.go

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"classifieds/internal/domain"
	"classifieds/internal/repository/listing_repository"
	"classifieds/internal/repository/seed_repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	fmt.Println("Connecting to database...")
	fmt.Printf("Host: %s\n", extractHost(connStr))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping: %v", err)
	}
	fmt.Println("Connected successfully!")

	repo := listing_repository.NewListingRepository(pool, logger)

	fmt.Println("\nRecreating schema...")
	if err := repo.DropSchema(ctx); err != nil {
		log.Fatalf("Failed to drop schema: %v", err)
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	seed, err := seed_repository.New(logger)
	if err != nil {
		log.Fatalf("Failed to load seed listings: %v", err)
	}
	listings, err := seed.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read seed listings: %v", err)
	}

	fmt.Println("Inserting seed listings...")
	if err := repo.ReplaceAll(ctx, listings); err != nil {
		log.Fatalf("Failed to insert listings: %v", err)
	}

	fmt.Println("\n=== VERIFICATION ===")

	stored, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read back listings: %v", err)
	}
	byCategory := lo.CountValuesBy(stored, func(l domain.Listing) string { return l.CategoryID })
	categories := lo.Keys(byCategory)
	slices.Sort(categories)
	for _, category := range categories {
		fmt.Printf("%-12s %d\n", category+":", byCategory[category])
	}
	fmt.Printf("Total:       %d\n", len(stored))

	fmt.Println("\n=== DATABASE RESET COMPLETE ===")
}

func extractHost(connStr string) string {
	parts := strings.Split(connStr, "@")
	if len(parts) > 1 {
		hostPart := strings.Split(parts[1], "/")[0]
		return hostPart
	}
	return "unknown"
}
