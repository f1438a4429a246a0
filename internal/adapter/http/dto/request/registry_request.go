package request

import "gestao_integrada/internal/domain/entities"

type ReplaceRegistryRequest struct {
	Rows []map[string]string `json:"rows"`
}

func (r ReplaceRegistryRequest) ToRows() []entities.RegistryRow {
	out := make([]entities.RegistryRow, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, entities.RegistryRow(row))
	}
	return out
}
