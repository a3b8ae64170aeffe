// Package decision adapts a natural-language model into the DecisionService
// port. The model's reply is free text that the adapter attempts to parse as
// JSON; output is advisory and never feeds the deterministic assignment or
// routing path.
package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fulfillment-routing-service/internal/domain"
	"fulfillment-routing-service/internal/platform/obs"
	"fulfillment-routing-service/internal/ports"
)

// ErrUnparseableReply wraps replies that are not valid proposal JSON.
// The raw text is kept in the error message for operator inspection.
var ErrUnparseableReply = errors.New("decision service: unparseable model reply")

// LLMDecisionService implements DecisionService against a chat-completions
// style HTTP API. Safe for concurrent use.
type LLMDecisionService struct {
	session *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewLLMDecisionService(apiKey string) (*LLMDecisionService, error) {
	if apiKey == "" {
		return nil, errors.New("LLM api key is empty")
	}

	return &LLMDecisionService{
		session: &http.Client{Timeout: 30 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openai.com",
		model:   "gpt-4o-mini",
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Propose asks the model to pick warehouses for the given optimization goal.
func (l *LLMDecisionService) Propose(
	ctx context.Context,
	req ports.ProposalRequest,
) (_ ports.Proposal, err error) {
	defer obs.Time(ctx, "llm.Propose")(&err)

	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		goal = "cost"
	}

	prompt, err := buildPrompt(req.Warehouses, req.Orders, goal)
	if err != nil {
		return ports.Proposal{}, fmt.Errorf("propose: build prompt: %w", err)
	}

	payload, err := json.Marshal(chatRequest{
		Model:       l.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
	})
	if err != nil {
		return ports.Proposal{}, fmt.Errorf("propose: marshal request: %w", err)
	}

	endpoint := l.baseURL + "/v1/chat/completions"
	resp, err := l.doWithRetry(ctx, func() (*http.Request, error) {
		return l.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.Proposal{}, fmt.Errorf("propose: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Proposal{}, fmt.Errorf("propose: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return ports.Proposal{}, errors.New("propose: response contains no choices")
	}

	return parseProposal(decoded.Choices[0].Message.Content)
}

func buildPrompt(warehouses []*domain.Warehouse, orders []*domain.Order, goal string) (string, error) {
	whJSON, err := json.Marshal(warehouses)
	if err != nil {
		return "", fmt.Errorf("marshal warehouses: %w", err)
	}
	orderJSON, err := json.Marshal(orders)
	if err != nil {
		return "", fmt.Errorf("marshal orders: %w", err)
	}

	return fmt.Sprintf(
		`You are a logistics optimization agent.
Warehouses data: %s
Customers data: %s
Goal: Optimize for %s.

Select the best warehouse(s) that minimizes %s, while meeting demand.
Respond in valid JSON format:

{"selected_warehouses": ["WH-A"], "reasoning": "shortest average distance and lowest cost"}`,
		whJSON, orderJSON, goal, goal,
	), nil
}

type proposalReply struct {
	SelectedWarehouses []string `json:"selected_warehouses"`
	Reasoning          string   `json:"reasoning"`
}

// parseProposal interprets the model's free-text reply as proposal JSON.
// Models often fence the JSON in markdown; the fence is stripped before
// parsing. Anything else is reported with the raw text attached.
func parseProposal(reply string) (ports.Proposal, error) {
	text := strings.TrimSpace(reply)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var parsed proposalReply
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return ports.Proposal{}, fmt.Errorf("%w: %q", ErrUnparseableReply, reply)
	}
	if len(parsed.SelectedWarehouses) == 0 {
		return ports.Proposal{}, fmt.Errorf("%w: no warehouses selected in %q", ErrUnparseableReply, reply)
	}

	return ports.Proposal{
		SelectedWarehouses: parsed.SelectedWarehouses,
		Reasoning:          parsed.Reasoning,
	}, nil
}
