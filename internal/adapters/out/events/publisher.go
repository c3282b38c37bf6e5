// Package events provides the outbound publisher for shipment lifecycle
// events. The current transport is the structured log stream consumed by the
// integration layer; publishing is fire-and-forget by contract.
package events

import (
	"context"
	"log/slog"

	"shipping/internal/core/domain/model/shipment"
)

// SlogPublisher emits shipment lifecycle events as structured log records.
type SlogPublisher struct {
	logger *slog.Logger
}

// NewSlogPublisher creates a publisher writing to the given logger.
func NewSlogPublisher(logger *slog.Logger) *SlogPublisher {
	return &SlogPublisher{logger: logger}
}

// PublishShipmentCreated emits the creation event.
func (p *SlogPublisher) PublishShipmentCreated(ctx context.Context, event shipment.CreatedEvent) {
	p.logger.InfoContext(ctx, "shipment created",
		"event", "ShipmentCreated",
		"shipmentId", event.ShipmentID.String(),
		"orderNumber", event.OrderNumber,
		"externalId", event.ExternalID,
		"createdAt", event.CreatedAt,
	)
}

// PublishShipmentCompleted emits the completion event.
func (p *SlogPublisher) PublishShipmentCompleted(ctx context.Context, event shipment.CompletedEvent) {
	p.logger.InfoContext(ctx, "shipment completed",
		"event", "ShipmentCompleted",
		"shipmentId", event.ShipmentID.String(),
		"orderNumber", event.OrderNumber,
		"externalId", event.ExternalID,
		"locationCode", event.LocationCode,
		"completedBy", event.CompletedByEmployeeID,
		"completeDate", event.CompleteDate,
	)
}
