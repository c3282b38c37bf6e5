package shipment

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// CreatedEvent is raised once when a shipment is created from an order.
type CreatedEvent struct {
	ShipmentID  kernel.UUID
	OrderNumber int64
	ExternalID  string
	CreatedAt   time.Time
}

// NewCreatedEvent builds the creation event for a shipment.
func NewCreatedEvent(s *Shipment, at time.Time) CreatedEvent {
	return CreatedEvent{
		ShipmentID:  s.ID(),
		OrderNumber: s.OrderNumber(),
		ExternalID:  s.ExternalID(),
		CreatedAt:   at,
	}
}

// CompletedEvent is raised exactly once per successful completion, after the
// completing transaction commits.
type CompletedEvent struct {
	ShipmentID            kernel.UUID
	OrderNumber           int64
	ExternalID            string
	LocationCode          string
	CompletedByEmployeeID string
	CompleteDate          time.Time
}

// NewCompletedEvent builds the completion event from a completed shipment.
func NewCompletedEvent(s *Shipment) CompletedEvent {
	var at time.Time
	if s.CompleteDate() != nil {
		at = *s.CompleteDate()
	}
	return CompletedEvent{
		ShipmentID:            s.ID(),
		OrderNumber:           s.OrderNumber(),
		ExternalID:            s.ExternalID(),
		LocationCode:          s.LocationCode(),
		CompletedByEmployeeID: s.CompletedByEmployeeID(),
		CompleteDate:          at,
	}
}
