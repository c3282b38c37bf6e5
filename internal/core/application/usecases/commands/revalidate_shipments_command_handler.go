package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// RevalidateShipmentsCommandHandler sweeps open shipments and re-checks every
// packed unit with the inventory authority. Units with disqualifying findings
// are flagged ineligible; each shipment's flags are persisted in their own
// transaction so one bad shipment never blocks the rest of the sweep.
//
// The completion command performs the same check at close time; this sweep
// only surfaces problems earlier, while the operator can still act on them.
type RevalidateShipmentsCommandHandler struct {
	uowFactory PackingUoWFactory
	inventory  ports.InventoryGateway
}

// NewRevalidateShipmentsCommandHandler creates a handler for revalidation sweeps.
func NewRevalidateShipmentsCommandHandler(
	uowFactory PackingUoWFactory,
	inventory ports.InventoryGateway,
) RevalidateShipmentsCommandHandler {
	return RevalidateShipmentsCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
	}
}

// Handle processes the revalidation command. Returns ErrNoOpenShipments when
// there is nothing to sweep, and ErrInventoryServiceUnavailable when the
// authority cannot be reached; both leave the packed records untouched.
func (h *RevalidateShipmentsCommandHandler) Handle(ctx context.Context, cmd RevalidateShipmentsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	shipments, err := uow.ShipmentRepository().GetAllOpen(ctx)
	if err != nil {
		return err
	}
	if len(shipments) == 0 {
		return ErrNoOpenShipments
	}

	for _, aggregate := range shipments {
		if err = h.revalidateShipment(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	return nil
}

// revalidateShipment re-checks one shipment's packed units and persists any
// new ineligible flags in a single transaction.
func (h *RevalidateShipmentsCommandHandler) revalidateShipment(
	ctx context.Context,
	uow PackingUoW,
	aggregate *shipment.Shipment,
) error {
	units, err := uow.PackedItemRepository().GetAllByShipmentID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	allowed := aggregate.AllowedInventoryNotificationTypes()

	var flagged []*shipment.PackedItem
	for _, unit := range units {
		// Already-flagged units stay flagged until the operator removes them.
		if unit.IsIneligible() {
			continue
		}

		validation, validateErr := h.inventory.Validate(
			ctx, unit.UnitNumber(), unit.ProductCode(), aggregate.LocationCode())
		if validateErr != nil {
			return validateErr
		}

		if !validation.HasNotifications() {
			continue
		}
		if aggregate.IsInternalTransfer() && validation.HasOnlyNotificationTypes(allowed) {
			continue
		}

		first := validation.Notifications[0]
		unit.MarkIneligible(shipment.IneligibleDetail{
			Status:  shipment.IneligibleStatus(first.ErrorName),
			Action:  first.Action,
			Reason:  first.Reason,
			Message: first.Message,
		})
		flagged = append(flagged, unit)
	}

	if len(flagged) == 0 {
		return nil
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packedRepo := uow.PackedItemRepository()
	for _, unit := range flagged {
		if err = packedRepo.Update(ctx, unit); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
