package main

import (
	"log"
	"os"

	"github.com/winniio/meetingpress/internal/infrastructure/database"
	"github.com/winniio/meetingpress/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database using GORM
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Apply migrations
	log.Println("🔄 Applying migrations from db/migrations/ directory...")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("✅ Migrations applied successfully!")
	os.Exit(0)
}
