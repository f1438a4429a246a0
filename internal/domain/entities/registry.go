package entities

// RegistryTable names a master-data table edited wholesale from the registry screen.
type RegistryTable string

const (
	RegistryTechnicians RegistryTable = "technicians"
	RegistryVehicles    RegistryTable = "vehicles"
	RegistryClients     RegistryTable = "clients"
)

var RegistryTables = []RegistryTable{RegistryTechnicians, RegistryVehicles, RegistryClients}

func (t RegistryTable) Valid() bool {
	switch t {
	case RegistryTechnicians, RegistryVehicles, RegistryClients:
		return true
	}
	return false
}

// RegistryRow is a master-data record keyed by field name.
type RegistryRow map[string]string
