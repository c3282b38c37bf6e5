package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// RemoveItemCommandHandler moves a unit flagged ineligible from the packed
// set into the removal audit. A scan that does not match a flagged unit means
// the operator's screen is stale; the rejection carries the current removed
// and to-be-removed sets so the screen can refresh.
type RemoveItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveItemCommandHandler creates a handler for removal operations.
func NewRemoveItemCommandHandler(uowFactory UoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (rules.Outcome, error) {
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

	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
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
	removedRepo := uow.RemovedItemRepository()

	packed, err := packedRepo.GetIneligibleByShipmentAndUnit(
		ctx, aggregate.ID(), cmd.UnitNumber(), cmd.ProductCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			view, viewErr := h.loadRemoveView(ctx, uow, aggregate.ID())
			if viewErr != nil {
				return rules.Outcome{}, viewErr
			}
			return rules.BadRequest(
				rules.Warn(messages.NameBadRequest, messages.VerificationStaleView)).
				WithResult("results", view), nil
		}
		return rules.Outcome{}, err
	}

	removed, err := shipment.NewRemovedItemFromPacked(
		kernel.NewUUID(), aggregate.ID(), packed, cmd.EmployeeID(), time.Now().UTC())
	if err != nil {
		return rules.Outcome{}, err
	}

	if err = removedRepo.Add(ctx, removed); err != nil {
		return rules.Outcome{}, err
	}
	if err = packedRepo.Delete(ctx, packed.ID()); err != nil {
		return rules.Outcome{}, err
	}

	view, err := h.loadRemoveView(ctx, uow, aggregate.ID())
	if err != nil {
		return rules.Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	return rules.OK(rules.Success(messages.RemoveItemSuccess)).WithResult("results", view), nil
}

func (h *RemoveItemCommandHandler) loadRemoveView(
	ctx context.Context,
	uow UoW,
	shipmentID kernel.UUID,
) (RemoveProductsView, error) {
	removed, err := uow.RemovedItemRepository().GetAllByShipmentID(ctx, shipmentID)
	if err != nil {
		return RemoveProductsView{}, err
	}

	toBeRemoved, err := uow.PackedItemRepository().GetAllIneligibleByShipmentID(ctx, shipmentID)
	if err != nil {
		return RemoveProductsView{}, err
	}

	return newRemoveProductsView(shipmentID.String(), removed, toBeRemoved), nil
}
