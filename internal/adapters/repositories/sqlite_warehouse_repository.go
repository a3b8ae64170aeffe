package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fulfillment-routing-service/internal/domain"
)

// SQLite-backed implementation of the WarehouseRepository port.
type SqliteWarehouseRepository struct{ DB *sql.DB }

func NewSqliteWarehouseRepository(db *sql.DB) *SqliteWarehouseRepository {
	return &SqliteWarehouseRepository{DB: db}
}

// Return all warehouses ordered by warehouse id.
func (s *SqliteWarehouseRepository) ListWarehouses(ctx context.Context) ([]*domain.Warehouse, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite warehouse repository: DB is nil")
	}

	query := `
	SELECT
		warehouse_id,
		name,
		lat,
		lon,
		inventory,
		unit_cost
	FROM warehouses
	ORDER BY warehouse_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query warehouses table: %w", err)
	}
	defer rows.Close()

	warehouses := make([]*domain.Warehouse, 0, 8)
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.WarehouseID, &w.Name, &w.Location.Lat, &w.Location.Lon, &w.Inventory, &w.UnitCost); err != nil {
			return nil, fmt.Errorf("list warehouses: scan row: %w", err)
		}
		warehouses = append(warehouses, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return warehouses, nil
}
