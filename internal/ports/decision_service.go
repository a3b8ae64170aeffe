package ports

import (
	"context"

	"fulfillment-routing-service/internal/domain"
)

// Input for a free-form sourcing proposal.
type ProposalRequest struct {
	Warehouses []*domain.Warehouse
	Orders     []*domain.Order
	Goal       string
}

// A parsed sourcing proposal. Advisory only: the deterministic assignment
// and routing path never consumes it.
type Proposal struct {
	SelectedWarehouses []string
	Reasoning          string
}

// Contract for a natural-language decision service. The response is
// non-deterministic and outside engineering control, so implementations
// are expected to be mockable and their output treated as advisory.
type DecisionService interface {
	Propose(ctx context.Context, req ProposalRequest) (Proposal, error)
}
