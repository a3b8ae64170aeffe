// Package store persists completed assignment runs in Postgres for the
// export/reporting surface.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/platform/obs"
)

// SQLAssignmentStore is a Postgres-backed implementation of the
// AssignmentStore port.
type SQLAssignmentStore struct {
	DB *sql.DB
}

func NewSQLAssignmentStore(db *sql.DB) *SQLAssignmentStore {
	return &SQLAssignmentStore{DB: db}
}

// InitSchema creates the assignment run table if it does not exist.
func (s *SQLAssignmentStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("assignment store: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS assignment_runs (
		run_id TEXT NOT NULL,
		order_id INTEGER NOT NULL,
		warehouse_id INTEGER NOT NULL,
		warehouse_name TEXT NOT NULL,
		dist_km DOUBLE PRECISION NOT NULL,
		transport_cost DOUBLE PRECISION NOT NULL,
		item_cost DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		backorder BOOLEAN NOT NULL,
		qty INTEGER NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (run_id, order_id)
	);
	`

	if _, err := s.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("assignment store: init schema: %w", err)
	}

	return nil
}

// SaveRun stores every assignment of one run under runID.
func (s *SQLAssignmentStore) SaveRun(
	ctx context.Context,
	runID string,
	assignments []domain.Assignment,
) (err error) {
	defer obs.Time(ctx, "store.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("assignment store: db is nil")
	}
	if runID == "" {
		return errors.New("save run: run id must not be empty")
	}
	if len(assignments) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO assignment_runs (
		run_id, order_id, warehouse_id, warehouse_name,
		dist_km, transport_cost, item_cost, total_cost,
		backorder, qty, lat, lon
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (run_id, order_id) DO UPDATE
	SET warehouse_id = EXCLUDED.warehouse_id,
		warehouse_name = EXCLUDED.warehouse_name,
		dist_km = EXCLUDED.dist_km,
		transport_cost = EXCLUDED.transport_cost,
		item_cost = EXCLUDED.item_cost,
		total_cost = EXCLUDED.total_cost,
		backorder = EXCLUDED.backorder,
		qty = EXCLUDED.qty,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`)
	if err != nil {
		return fmt.Errorf("save run: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, a := range assignments {
		if _, err := stmt.ExecContext(ctx,
			runID, a.OrderID, a.WarehouseID, a.WarehouseName,
			a.DistanceKm, a.TransportCost, a.ItemCost, a.TotalCost,
			a.Backorder, a.Quantity, a.Location.Lat, a.Location.Lon,
		); err != nil {
			return fmt.Errorf("save run: insert order_id=%d: %w", a.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run: commit: %w", err)
	}

	return nil
}
