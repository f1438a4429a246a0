package response

import "gestao_integrada/internal/domain/entities"

type QuoteResponse struct {
	VisualID    string `json:"visual_id"`
	ClientName  string `json:"client_name"`
	IssueDate   string `json:"issue_date"`
	RTReference int    `json:"rt_reference"`
	Sequence    int    `json:"sequence"`
	ServiceType string `json:"service_type"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		VisualID:    q.VisualID,
		ClientName:  q.ClientName,
		IssueDate:   q.IssueDate,
		RTReference: q.RTReference,
		Sequence:    q.Sequence,
		ServiceType: string(q.ServiceType),
		Description: q.Description,
		Status:      string(q.Status),
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
