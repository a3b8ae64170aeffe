package decision

import (
	"context"
	"errors"
	"testing"

	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/ports"
)

func TestParseProposalPlainJSON(t *testing.T) {
	reply := `{"selected_warehouses": ["WH-A", "WH-B"], "reasoning": "closest to demand"}`

	p, err := parseProposal(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.SelectedWarehouses) != 2 || p.SelectedWarehouses[0] != "WH-A" {
		t.Errorf("selected = %v, want [WH-A WH-B]", p.SelectedWarehouses)
	}
	if p.Reasoning != "closest to demand" {
		t.Errorf("reasoning = %q", p.Reasoning)
	}
}

func TestParseProposalFencedJSON(t *testing.T) {
	reply := "```json\n{\"selected_warehouses\": [\"WH-A\"], \"reasoning\": \"r\"}\n```"

	p, err := parseProposal(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.SelectedWarehouses) != 1 || p.SelectedWarehouses[0] != "WH-A" {
		t.Errorf("selected = %v, want [WH-A]", p.SelectedWarehouses)
	}
}

func TestParseProposalGarbage(t *testing.T) {
	for _, reply := range []string{
		"I think WH-A is best.",
		`{"selected_warehouses": []}`,
		"",
	} {
		if _, err := parseProposal(reply); !errors.Is(err, ErrUnparseableReply) {
			t.Errorf("parseProposal(%q) err = %v, want ErrUnparseableReply", reply, err)
		}
	}
}

func TestMockDecisionService(t *testing.T) {
	mock := NewMockDecisionService()

	_, err := mock.Propose(context.Background(), ports.ProposalRequest{})
	if err == nil {
		t.Error("expected error without warehouses")
	}

	p, err := mock.Propose(context.Background(), ports.ProposalRequest{
		Warehouses: []*domain.Warehouse{{WarehouseID: 1, Name: "WH-A"}},
		Goal:       "cost",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.SelectedWarehouses) != 1 || p.SelectedWarehouses[0] != "WH-A" {
		t.Errorf("selected = %v, want [WH-A]", p.SelectedWarehouses)
	}
}
