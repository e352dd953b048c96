package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akoval/taskhub/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Applies schema migrations for the server-backed databases. The SQLite
// default bootstraps its own schema at startup and needs no migration.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	url := strings.TrimSpace(cfg.Database.URL)

	var sourceURL string
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		sourceURL = "file://migrations/postgres"
	case strings.HasPrefix(url, "mysql://"):
		sourceURL = "file://migrations/mysql"
	default:
		fmt.Println("SQLite databases are migrated automatically at server startup; nothing to do")
		return
	}

	fmt.Printf("Applying migrations from %s...\n", sourceURL)

	m, err := migrate.New(sourceURL, url)
	if err != nil {
		panic(fmt.Sprintf("Failed to create migrate instance: %v", err))
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Database migration: no changes")
			return
		}
		panic(fmt.Sprintf("Failed to run migrate up: %v", err))
	}

	fmt.Println("Database migration: success")
}
