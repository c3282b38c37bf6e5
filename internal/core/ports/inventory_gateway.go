package ports

import (
	"context"
	"errors"
	"time"
)

// ErrInventoryServiceUnavailable signals that the inventory authority could
// not be reached or answered with a transport-level failure. Callers translate
// it into a SYSTEM notification instead of failing the request.
var ErrInventoryServiceUnavailable = errors.New("inventory service is unavailable")

// InventoryNotification is one eligibility finding reported by the inventory
// authority for a scanned unit.
type InventoryNotification struct {
	ErrorName string `json:"errorName"`
	ErrorType string `json:"errorType"`
	Message   string `json:"errorMessage"`
	Reason    string `json:"reason"`
	Action    string `json:"action"`
}

// InventoryRecord is the inventory authority's view of a labeled unit.
type InventoryRecord struct {
	UnitNumber          string     `json:"unitNumber"`
	ProductCode         string     `json:"productCode"`
	ProductDescription  string     `json:"productDescription"`
	ProductFamily       string     `json:"productFamily"`
	AboRh               string     `json:"aboRh"`
	Status              string     `json:"inventoryStatus"`
	TemperatureCategory string     `json:"temperatureCategory"`
	IsLabeled           bool       `json:"isLabeled"`
	ExpirationDate      *time.Time `json:"expirationDate"`
	CollectionDate      *time.Time `json:"collectionDate"`
}

// InventoryValidation is the full answer for one scanned unit: the record as
// the authority knows it, plus zero or more eligibility findings.
type InventoryValidation struct {
	Record        *InventoryRecord
	Notifications []InventoryNotification
}

// HasNotifications reports whether the authority raised any finding.
func (v InventoryValidation) HasNotifications() bool {
	return len(v.Notifications) > 0
}

// HasNotificationType reports whether a finding with the given error name is
// present.
func (v InventoryValidation) HasNotificationType(name string) bool {
	for _, n := range v.Notifications {
		if n.ErrorName == name {
			return true
		}
	}
	return false
}

// HasOnlyNotificationTypes reports whether every finding's error name is in
// the allowed set. True when there are no findings at all.
func (v InventoryValidation) HasOnlyNotificationTypes(allowed []string) bool {
	for _, n := range v.Notifications {
		found := false
		for _, name := range allowed {
			if n.ErrorName == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// InventoryGateway is the outbound port to the inventory authority.
type InventoryGateway interface {
	// Validate asks the authority whether the scanned unit may ship from the
	// given location. Returns ErrInventoryServiceUnavailable when the
	// authority cannot be reached.
	Validate(ctx context.Context, unitNumber, productCode, locationCode string) (InventoryValidation, error)
}
