// Command db_init creates the PrepWise database file and applies all
// embedded migrations.
package main

import (
	"context"
	"fmt"
	"os"

	dbfs "github.com/Sumeet011/AI-Voice-Interview-Platform/db"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/internal/db"
)

func main() {
	ctx := context.Background()
	path := os.Getenv("PREPWISE_DATABASE_PATH")
	if path == "" {
		path = "prepwise.db"
	}
	database, err := db.New(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database initialized successfully.")
}
