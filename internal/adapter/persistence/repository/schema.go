package repository

import (
	"context"
	"log"

	"gestao_integrada/internal/domain/entities"
	"gestao_integrada/internal/usecase/interfaces"
)

const (
	TableQuotes      = "quotes"
	TableWorkOrders  = "work_orders"
	TableTechnicians = string(entities.RegistryTechnicians)
	TableVehicles    = string(entities.RegistryVehicles)
	TableClients     = string(entities.RegistryClients)
	TableUsers       = "users"
)

var (
	QuotesHeader = []string{
		"visual_id", "client_name", "issue_date", "rt_reference", "sequence", "service_type", "description", "status",
	}
	WorkOrdersHeader = []string{
		"id", "client_name", "art_code", "service_type", "status", "created_at", "pdf_link", "description",
		"history_note", "source_quote_id", "assigned_technician", "report_status", "correction_date",
		"corrected_by", "delivery_date", "physical_partition",
	}
	TechniciansHeader = []string{"name", "role"}
	VehiclesHeader    = []string{"model", "plate"}
	ClientsHeader     = []string{"name", "tax_id", "address", "number", "district", "city", "state", "contact"}
	// UsersHeader is provisioned but not read by any use case.
	UsersHeader = []string{"username", "password", "name", "role"}
)

// Schema lists every table with the header it is created with.
var Schema = []struct {
	Table  string
	Header []string
}{
	{TableWorkOrders, WorkOrdersHeader},
	{TableTechnicians, TechniciansHeader},
	{TableVehicles, VehiclesHeader},
	{TableQuotes, QuotesHeader},
	{TableClients, ClientsHeader},
	{TableUsers, UsersHeader},
}

// EnsureSchema creates the missing tables. Existing tables are left as they are.
func EnsureSchema(ctx context.Context, store interfaces.IRecordStore) error {
	for _, t := range Schema {
		created, err := store.EnsureTable(ctx, t.Table, t.Header)
		if err != nil {
			return err
		}
		if created {
			log.Printf("[schema][bootstrap] created table=%s columns=%d", t.Table, len(t.Header))
		}
	}
	return nil
}
