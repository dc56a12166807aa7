package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rensmac/portfolio-api/internal/config"
	"github.com/rensmac/portfolio-api/internal/repository/mongo"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Applying migrations to %s...\n", cfg.Mongo.Database)

	if err := mongo.RunMigrations("migrations", cfg.Mongo.URI, cfg.Mongo.Database); err != nil {
		panic(fmt.Sprintf("Failed to run migrations: %v", err))
	}

	fmt.Println("Migrations applied successfully")
}
