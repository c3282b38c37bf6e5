// Package queries contains read operations of the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database for optimal read performance.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves the shipment worklist, optionally filtered by
// lifecycle status. An empty status returns every shipment.
type GetShipmentsQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for the shipment worklist.
// status may be empty, "OPEN" or "COMPLETED".
func NewGetShipmentsQuery(status string) GetShipmentsQuery {
	return GetShipmentsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetShipmentsQuery) Status() string {
	return q.status
}

// GetShipmentsQueryResponse is one row of the shipment worklist.
type GetShipmentsQueryResponse struct {
	ID           kernel.UUID `json:"id"`
	OrderNumber  int64       `json:"orderNumber"`
	ExternalID   string      `json:"externalId,omitempty"`
	Status       string      `json:"status"`
	Priority     string      `json:"priority"`
	ShipmentType string      `json:"shipmentType"`
	LocationCode string      `json:"locationCode"`
	CreatedAt    time.Time   `json:"createdAt"`
	CompleteDate *time.Time  `json:"completeDate,omitempty"`
}
