package main

import (
	"log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/stafflog/attendance-backend-go/internal/config"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()

	dtb := stdlib.OpenDBFromPool(db.Pool)
	if migrationErr := goose.Up(dtb, "migrations"); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Println("Migrations applied successfully")
}
