package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		warehouse_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		inventory INTEGER NOT NULL CHECK (inventory >= 0),
		unit_cost REAL NOT NULL CHECK (unit_cost >= 0)
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id INTEGER PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		qty INTEGER NOT NULL DEFAULT 1 CHECK (qty > 0)
	);
	`

	statements := []string{
		createWarehousesQuery,
		createOrdersQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type WarehouseSeed struct {
	WarehouseID int     `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Inventory   int     `json:"inventory"`
	UnitCost    float64 `json:"unit_cost"`
}

type OrderSeed struct {
	OrderID int     `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Qty     int     `json:"qty"`
}

// Populate the warehouses table from a JSON seed file.
func SeedWarehousesFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed warehouses: read %q: %w", jsonPath, err)
	}

	var data []WarehouseSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed warehouses: parse json: %w", err)
	}

	for i, w := range data {
		if w.WarehouseID <= 0 {
			return fmt.Errorf("seed warehouses: invalid warehouse id at index %d: %d", i+1, w.WarehouseID)
		}
		if strings.TrimSpace(w.Name) == "" {
			return fmt.Errorf("seed warehouses: warehouse %d: name cannot be empty", w.WarehouseID)
		}
		if w.Inventory < 0 {
			return fmt.Errorf("seed warehouses: warehouse %d: inventory cannot be negative", w.WarehouseID)
		}
		if w.UnitCost < 0 {
			return fmt.Errorf("seed warehouses: warehouse %d: unit cost cannot be negative", w.WarehouseID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed warehouses: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO warehouses (
		warehouse_id,
		name,
		lat,
		lon,
		inventory,
		unit_cost
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed warehouses: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range data {
		if _, err := stmt.Exec(w.WarehouseID, strings.TrimSpace(w.Name), w.Lat, w.Lon, w.Inventory, w.UnitCost); err != nil {
			return fmt.Errorf("seed warehouses: insert warehouse_id=%d: %w", w.WarehouseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed warehouses: commit tx: %w", err)
	}

	return nil
}

// Populate the orders table from a JSON seed file.
// A missing or zero qty defaults to 1.
func SeedOrdersFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed orders: parse json: %w", err)
	}

	rows := make([]OrderSeed, 0, len(data))
	for i, o := range data {
		if o.OrderID <= 0 {
			return fmt.Errorf("seed orders: invalid order id at index %d: %d", i+1, o.OrderID)
		}

		qty := o.Qty
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return fmt.Errorf("seed orders: order %d: qty cannot be negative", o.OrderID)
		}
		rows = append(rows, OrderSeed{OrderID: o.OrderID, Lat: o.Lat, Lon: o.Lon, Qty: qty})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO orders (
		order_id,
		lat,
		lon,
		qty
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range rows {
		if _, err := stmt.Exec(o.OrderID, o.Lat, o.Lon, o.Qty); err != nil {
			return fmt.Errorf("seed orders: insert order_id=%d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}
