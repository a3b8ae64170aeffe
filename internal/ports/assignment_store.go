package ports

import (
	"context"

	"fulfillment-routing-service/internal/domain"
)

// Port: persistence for completed assignment runs. Optional; writes that
// fail must not fail the run itself.
type AssignmentStore interface {
	// Store all assignments produced by one run under a run identifier.
	SaveRun(ctx context.Context, runID string, assignments []domain.Assignment) error
}
