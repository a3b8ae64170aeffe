package decision

import (
	"context"
	"errors"

	"fulfillment-routing-service/internal/ports"
)

// Deterministic DecisionService for tests and offline runs: always proposes
// the first warehouse by input order.
type MockDecisionService struct{}

func NewMockDecisionService() *MockDecisionService {
	return &MockDecisionService{}
}

func (m *MockDecisionService) Propose(
	ctx context.Context,
	req ports.ProposalRequest,
) (ports.Proposal, error) {
	if len(req.Warehouses) == 0 {
		return ports.Proposal{}, errors.New("mock decision service: no warehouses")
	}

	return ports.Proposal{
		SelectedWarehouses: []string{req.Warehouses[0].Name},
		Reasoning:          "first warehouse by input order (mock)",
	}, nil
}
