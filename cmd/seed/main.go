package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"storefront-checkout/internal/client"
	"storefront-checkout/internal/config"
	"storefront-checkout/internal/repository"
	"storefront-checkout/internal/seed"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitPostgresClient(cfg.DatabaseURL)
	productRepo := repository.NewProductRepository(db)

	if err := productRepo.Seed(context.Background(), seed.Products); err != nil {
		log.Fatal("failed to seed products:", err)
	}

	log.Printf("seeded %d products", len(seed.Products))
}
