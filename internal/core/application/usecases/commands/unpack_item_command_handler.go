package commands

import (
	"context"
	"errors"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// UnpackItemCommandHandler removes a packed unit from a demand line and
// returns the refreshed packing screen. Only open shipments can be unpacked.
type UnpackItemCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewUnpackItemCommandHandler creates a handler for unpacking operations.
func NewUnpackItemCommandHandler(uowFactory PackingUoWFactory) UnpackItemCommandHandler {
	return UnpackItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unpack command.
func (h *UnpackItemCommandHandler) Handle(ctx context.Context, cmd UnpackItemCommand) (rules.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return rules.Outcome{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return rules.Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.ShipmentItemRepository().Get(ctx, cmd.ShipmentItemID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return rules.BadRequest(
				rules.Warn(messages.NameShipmentItemNotFound, messages.ShipmentItemNotFound)), nil
		}
		return rules.Outcome{}, err
	}

	aggregate, err := uow.ShipmentRepository().Get(ctx, item.ShipmentID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return rules.BadRequest(
				rules.Warn(messages.NameShipmentNotFound, messages.ShipmentNotFound)), nil
		}
		return rules.Outcome{}, err
	}
	if aggregate.IsCompleted() {
		return rules.BadRequest(
			rules.Warn(messages.NameShipmentCompleted, messages.ShipmentCompleted)), nil
	}

	packedRepo := uow.PackedItemRepository()

	packed, err := findPackedOnItem(ctx, uow, item, cmd.UnitNumber(), cmd.ProductCode())
	if err != nil {
		return rules.Outcome{}, err
	}
	if packed == nil {
		return rules.BadRequest(
			rules.Warn(messages.NameUnpackProductNotFound, messages.UnpackProductMissing)), nil
	}

	if err = packedRepo.Delete(ctx, packed.ID()); err != nil {
		return rules.Outcome{}, err
	}

	if err = resetVerificationRound(ctx, packedRepo, aggregate.ID()); err != nil {
		return rules.Outcome{}, err
	}

	view, err := loadShipmentItemView(ctx, uow, item)
	if err != nil {
		return rules.Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	return rules.OK(rules.Success(messages.UnpackSuccess)).WithResult("results", view), nil
}

// findPackedOnItem scans the demand line's packed units for the scanned pair.
// Returns nil when the pair is not packed on this line.
func findPackedOnItem(
	ctx context.Context,
	uow PackingUoW,
	item *shipment.ShipmentItem,
	unitNumber, productCode string,
) (*shipment.PackedItem, error) {
	all, err := uow.PackedItemRepository().GetAllByItemID(ctx, item.ID())
	if err != nil {
		return nil, err
	}

	for _, packed := range all {
		if packed.Matches(unitNumber, productCode) {
			return packed, nil
		}
	}

	return nil, nil //nolint:nilnil //absence is a business outcome, not an error
}
