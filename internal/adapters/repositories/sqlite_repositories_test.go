package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestSeedAndListWarehouses(t *testing.T) {
	db := openTestDB(t)

	seed := writeSeed(t, "warehouses.json", `[
		{"id": 1, "name": "WH-A", "lat": 28.61, "lon": 77.23, "inventory": 10, "unit_cost": 5.0},
		{"id": 2, "name": "WH-B", "lat": 28.70, "lon": 77.10, "inventory": 5, "unit_cost": 4.5}
	]`)

	if err := SeedWarehousesFromJSON(db, seed); err != nil {
		t.Fatalf("seed warehouses: %v", err)
	}

	repo := NewSqliteWarehouseRepository(db)
	warehouses, err := repo.ListWarehouses(context.Background())
	if err != nil {
		t.Fatalf("list warehouses: %v", err)
	}

	if len(warehouses) != 2 {
		t.Fatalf("got %d warehouses, want 2", len(warehouses))
	}
	a := warehouses[0]
	if a.WarehouseID != 1 || a.Name != "WH-A" || a.Inventory != 10 || a.UnitCost != 5.0 {
		t.Errorf("unexpected first warehouse: %+v", a)
	}
	if a.Location.Lat != 28.61 || a.Location.Lon != 77.23 {
		t.Errorf("unexpected first warehouse location: %+v", a.Location)
	}
}

func TestSeedWarehousesRejectsBadRows(t *testing.T) {
	db := openTestDB(t)

	cases := []struct {
		name string
		json string
	}{
		{"bad id", `[{"id": 0, "name": "X", "lat": 0, "lon": 0, "inventory": 1, "unit_cost": 1}]`},
		{"empty name", `[{"id": 1, "name": "  ", "lat": 0, "lon": 0, "inventory": 1, "unit_cost": 1}]`},
		{"negative inventory", `[{"id": 1, "name": "X", "lat": 0, "lon": 0, "inventory": -1, "unit_cost": 1}]`},
	}

	for _, tc := range cases {
		seed := writeSeed(t, "bad.json", tc.json)
		if err := SeedWarehousesFromJSON(db, seed); err == nil {
			t.Errorf("%s: expected seed error", tc.name)
		}
	}
}

func TestSeedAndListOrdersDefaultsQuantity(t *testing.T) {
	db := openTestDB(t)

	seed := writeSeed(t, "orders.json", `[
		{"id": 2, "lat": 28.62, "lon": 77.24, "qty": 3},
		{"id": 1, "lat": 28.61, "lon": 77.23}
	]`)

	if err := SeedOrdersFromJSON(db, seed); err != nil {
		t.Fatalf("seed orders: %v", err)
	}

	repo := NewSqliteOrderRepository(db)
	orders, err := repo.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	// Listing is ordered by order id regardless of seed file order.
	if orders[0].OrderID != 1 || orders[1].OrderID != 2 {
		t.Errorf("order ids = [%d, %d], want [1, 2]", orders[0].OrderID, orders[1].OrderID)
	}
	if orders[0].Quantity != 1 {
		t.Errorf("missing qty defaulted to %d, want 1", orders[0].Quantity)
	}
	if orders[1].Quantity != 3 {
		t.Errorf("qty = %d, want 3", orders[1].Quantity)
	}
}

func TestSeedOrdersReseedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	seed := writeSeed(t, "orders.json", `[{"id": 1, "lat": 28.61, "lon": 77.23, "qty": 2}]`)

	if err := SeedOrdersFromJSON(db, seed); err != nil {
		t.Fatalf("seed orders: %v", err)
	}
	if err := SeedOrdersFromJSON(db, seed); err != nil {
		t.Fatalf("re-seed orders: %v", err)
	}

	orders, err := NewSqliteOrderRepository(db).ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("got %d orders after re-seed, want 1", len(orders))
	}
}
