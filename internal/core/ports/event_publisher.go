package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// ShipmentEventPublisher is the outbound port for lifecycle events. Events
// are published after the owning transaction commits; publishing failures
// must not fail the operation.
type ShipmentEventPublisher interface {
	PublishShipmentCreated(ctx context.Context, event shipment.CreatedEvent)
	PublishShipmentCompleted(ctx context.Context, event shipment.CompletedEvent)
}
