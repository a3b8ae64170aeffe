package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"fulfillment-routing-service/internal/adapters/repositories"
	"fulfillment-routing-service/internal/adapters/store"
	"fulfillment-routing-service/internal/config"
	"fulfillment-routing-service/internal/platform/db"
)

// dbtool prepares local databases outside the server process: it creates
// the SQLite schema, loads the warehouse/order seeds, and, when
// DATABASE_URL is set, creates the Postgres assignment-run table.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	warehouseSeedPath := config.Get("WAREHOUSE_SEED_PATH", "data/seeds/warehouses.json")
	orderSeedPath := config.Get("ORDER_SEED_PATH", "data/seeds/orders.json")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open sqlite database %q: %v", dbPath, err)
	}
	defer sqliteDB.Close()

	if err := initAndSeed(sqliteDB, warehouseSeedPath, orderSeedPath); err != nil {
		log.Fatal(err)
	}

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Println("DATABASE_URL not set; skipping assignment run store")
		return
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Preparing assignment run store...")
	if err := store.NewSQLAssignmentStore(pg).InitSchema(context.Background()); err != nil {
		log.Fatalf("assignment run store init failed: %v", err)
	}
	log.Println("Assignment run store ready.")
}

func initAndSeed(db *sql.DB, warehouseSeedPath, orderSeedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedWarehousesFromJSON(db, warehouseSeedPath); err != nil {
		log.Fatalf("warehouse seeding failed: %v", err)
	}
	if err := repositories.SeedOrdersFromJSON(db, orderSeedPath); err != nil {
		log.Fatalf("order seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
