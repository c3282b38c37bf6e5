package ports

import "context"

// Facility is the master-data view of a blood center location.
type Facility struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	AddressOne string `json:"addressOne"`
	AddressTwo string `json:"addressTwo"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// FacilityGateway is the outbound port to the facility master-data service.
type FacilityGateway interface {
	// GetFacility resolves the facility behind a location code.
	GetFacility(ctx context.Context, locationCode string) (Facility, error)
}
