package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"fulfillment-routing-service/internal/adapters/cache"
	"fulfillment-routing-service/internal/adapters/decision"
	"fulfillment-routing-service/internal/adapters/repositories"
	"fulfillment-routing-service/internal/adapters/solver"
	"fulfillment-routing-service/internal/adapters/store"
	"fulfillment-routing-service/internal/api"
	"fulfillment-routing-service/internal/config"
	"fulfillment-routing-service/internal/platform/db"
	"fulfillment-routing-service/internal/ports"
	"fulfillment-routing-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Postgres, Redis, the greedy solver)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	warehouseSeedPath := config.Get("WAREHOUSE_SEED_PATH", "data/seeds/warehouses.json")
	orderSeedPath := config.Get("ORDER_SEED_PATH", "data/seeds/orders.json")
	port := config.Get("PORT", "8080")

	defaults := api.Defaults{
		Assign: services.AssignConfig{
			TransportCostPerKm: config.GetFloat("TRANSPORT_COST_PER_KM", 0.5),
			BackorderPenalty:   config.GetFloat("BACKORDER_PENALTY", 50.0),
		},
		NumVehicles: config.GetInt("NUM_VEHICLES", 1),
		TimeLimitS:  config.GetInt("TIME_LIMIT_S", 5),
	}

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(sqliteDB, warehouseSeedPath, orderSeedPath); err != nil {
		log.Fatal(err)
	}

	warehouseRepo := repositories.NewSqliteWarehouseRepository(sqliteDB)
	orderRepo := repositories.NewSqliteOrderRepository(sqliteDB)

	var routeSolver ports.RouteSolver = solver.NewGreedySolver()

	// Redis caches solved routes; without it every plan request re-solves.
	if redisAddr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		routeSolver = cache.NewCachedRouteSolver(routeSolver, rdb, 1*time.Hour)
		log.Printf("Route cache enabled addr=%s", redisAddr)
	}

	// Postgres run history is optional; skipped entirely when unset.
	var runStore ports.AssignmentStore
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		s := store.NewSQLAssignmentStore(pg)
		if err := s.InitSchema(context.Background()); err != nil {
			log.Fatal(err)
		}
		runStore = s
		log.Println("Assignment run store enabled")
	}

	// The LLM decision boundary is advisory; the mock keeps /proposals
	// deterministic when no key is configured.
	var decider ports.DecisionService = decision.NewMockDecisionService()
	if llmKey := strings.TrimSpace(os.Getenv("LLM_API_KEY")); llmKey != "" {
		d, err := decision.NewLLMDecisionService(llmKey)
		if err != nil {
			log.Fatal(err)
		}
		decider = d
		log.Println("LLM decision service enabled")
	}

	router := api.NewRouter(warehouseRepo, orderRepo, routeSolver, runStore, decider, defaults)

	// Write timeout leaves headroom for solver runs at the maximum time limit.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, warehouseSeedPath, orderSeedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedWarehousesFromJSON(db, warehouseSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedOrdersFromJSON(db, orderSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
