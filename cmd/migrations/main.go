package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies the SQL migrations under the postgres adapter in lexical order.
// With an argument, applies only the migration whose file name contains it.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

	var filter string
	if len(os.Args) > 1 {
		filter = os.Args[1]
	}

	applied, err := runMigrations(db, basePath, filter)
	if err != nil {
		log.Fatal(err)
	}
	if applied == 0 {
		log.Fatal("no matching migration files found")
	}

	fmt.Printf("%d migration(s) executed successfully.\n", applied)
}

func runMigrations(db *sql.DB, basePath, filter string) (int, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	applied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		if filter != "" && !strings.Contains(entry.Name(), filter) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(basePath, entry.Name()))
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return applied, fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
		applied++
	}

	return applied, nil
}

func dbConnString() string {
	dbName := os.Getenv("POSTGRES_DB")
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
