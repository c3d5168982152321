package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gleeclub/grease-api/internal/config"
	"github.com/gleeclub/grease-api/internal/db"
	"github.com/gleeclub/grease-api/internal/logger"
)

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "up" && os.Args[1] != "down") {
		log.Fatal("Usage: go run ./cmd/migrate [up|down]")
	}

	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = db.PostgresDSN(conf.Postgres)
	}

	if err = db.Migrate(dsn, "./migrations", os.Args[1] == "up"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
