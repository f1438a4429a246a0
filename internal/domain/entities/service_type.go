package entities

type ServiceType string

const (
	ServiceTypeInstallation          ServiceType = "Installation"
	ServiceTypePreventiveMaintenance ServiceType = "Preventive Maintenance"
	ServiceTypeCorrectiveMaintenance ServiceType = "Corrective Maintenance"
	ServiceTypeTechnicalInspection   ServiceType = "Technical Inspection"
	ServiceTypeTechnicalReport       ServiceType = "Technical Report"
	ServiceTypeProject               ServiceType = "Project"
	ServiceTypeConsulting            ServiceType = "Consulting"
	ServiceTypeEmergency             ServiceType = "Emergency"
)

// ServiceTypes is the catalogue offered on quote and work order forms.
var ServiceTypes = []ServiceType{
	ServiceTypeInstallation,
	ServiceTypePreventiveMaintenance,
	ServiceTypeCorrectiveMaintenance,
	ServiceTypeTechnicalInspection,
	ServiceTypeTechnicalReport,
	ServiceTypeProject,
	ServiceTypeConsulting,
	ServiceTypeEmergency,
}

func (t ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if t == known {
			return true
		}
	}
	return false
}
