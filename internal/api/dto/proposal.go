package dto

type ProposalRequest struct {
	Goal string `json:"goal"`
}

type ProposalResponse struct {
	SelectedWarehouses []string `json:"selected_warehouses"`
	Reasoning          string   `json:"reasoning"`
}
