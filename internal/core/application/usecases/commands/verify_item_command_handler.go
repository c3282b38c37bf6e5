package commands

import (
	"context"
	"errors"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// VerifyItemCommandHandler records the second scan of a packed unit. A scan
// that does not match a packed unit, or matches one already verified, is
// rejected but the current verification screen is still returned so the
// operator keeps context.
type VerifyItemCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewVerifyItemCommandHandler creates a handler for verification scans.
func NewVerifyItemCommandHandler(uowFactory PackingUoWFactory) VerifyItemCommandHandler {
	return VerifyItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification scan.
func (h *VerifyItemCommandHandler) Handle(ctx context.Context, cmd VerifyItemCommand) (rules.Outcome, error) {
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

	packed, err := packedRepo.GetByShipmentAndUnit(ctx, aggregate.ID(), cmd.UnitNumber(), cmd.ProductCode())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return h.rejectedOutcome(ctx, uow, cmd,
				rules.Warn(messages.NameVerificationUnitNotPacked, messages.VerificationUnitNotPacked))
		}
		return rules.Outcome{}, err
	}

	if err = packed.Verify(cmd.EmployeeID()); err != nil {
		switch {
		case errors.Is(err, shipment.ErrUnitAlreadyVerified):
			return h.rejectedOutcome(ctx, uow, cmd,
				rules.Warn(messages.NameVerificationCompleted, messages.VerificationCompleted))
		case errors.Is(err, shipment.ErrUnitVerificationDisabled):
			return h.rejectedOutcome(ctx, uow, cmd,
				rules.Warn(messages.NameBadRequest, messages.VerificationUnitNotPacked))
		default:
			return rules.Outcome{}, err
		}
	}

	if err = packedRepo.Update(ctx, packed); err != nil {
		return rules.Outcome{}, err
	}

	all, err := packedRepo.GetAllByShipmentID(ctx, aggregate.ID())
	if err != nil {
		return rules.Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	view := newVerifyProductsView(aggregate.ID().String(), all)

	return rules.OK().WithResult("results", view), nil
}

// rejectedOutcome builds a failed outcome that still carries the current
// verification screen.
func (h *VerifyItemCommandHandler) rejectedOutcome(
	ctx context.Context,
	uow PackingUoW,
	cmd VerifyItemCommand,
	notification rules.Notification,
) (rules.Outcome, error) {
	all, err := uow.PackedItemRepository().GetAllByShipmentID(ctx, cmd.ShipmentID())
	if err != nil {
		return rules.Outcome{}, err
	}

	view := newVerifyProductsView(cmd.ShipmentID().String(), all)

	return rules.BadRequest(notification).WithResult("results", view), nil
}
