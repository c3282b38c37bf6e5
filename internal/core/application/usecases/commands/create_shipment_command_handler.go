package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// CreateShipmentCommandHandler opens a shipment for a fulfilled order.
// Creates the aggregate, its demand lines and short-date flags in one
// transaction and publishes the created event after commit.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.ShipmentEventPublisher
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.ShipmentEventPublisher,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the shipment creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OrderNumber(),
		cmd.ExternalID(),
		cmd.Priority(),
		cmd.ShipmentType(),
		cmd.LabelStatus(),
		cmd.LocationCode(),
		cmd.ProductCategory(),
		cmd.QuarantinedProducts(),
		cmd.Comments(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	itemRepo := uow.ShipmentItemRepository()
	shortDateRepo := uow.ShortDateProductRepository()

	for _, itemData := range cmd.Items() {
		item, itemErr := shipment.NewShipmentItem(
			kernel.NewUUID(),
			aggregate.ID(),
			itemData.ProductFamily,
			shipment.BloodType(itemData.BloodType),
			itemData.Quantity,
			itemData.Comments,
		)
		if itemErr != nil {
			return itemErr
		}

		if err = itemRepo.Add(ctx, item); err != nil {
			return err
		}

		for _, shortDate := range itemData.ShortDateProducts {
			flag, flagErr := shipment.NewShortDateProduct(
				kernel.NewUUID(),
				item.ID(),
				shortDate.UnitNumber,
				shortDate.ProductCode,
				shortDate.ExpirationDate,
			)
			if flagErr != nil {
				return flagErr
			}

			if err = shortDateRepo.Add(ctx, flag); err != nil {
				return err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishShipmentCreated(ctx, shipment.NewCreatedEvent(aggregate, time.Now().UTC()))

	return nil
}
