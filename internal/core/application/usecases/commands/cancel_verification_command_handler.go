package commands

import (
	"context"
	"errors"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/pkg/errs"
)

// CancelVerificationCommandHandler cancels a verification round in two steps.
// Handle evaluates the guards and answers with a confirmation prompt;
// HandleConfirm re-evaluates them and resets every packed unit to Pending.
// Both steps refuse completed shipments and shipments still holding
// ineligible units.
type CancelVerificationCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewCancelVerificationCommandHandler creates a handler for round cancellation.
func NewCancelVerificationCommandHandler(uowFactory PackingUoWFactory) CancelVerificationCommandHandler {
	return CancelVerificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle evaluates the cancellation guards and asks for confirmation.
func (h *CancelVerificationCommandHandler) Handle(
	ctx context.Context,
	cmd CancelVerificationCommand,
) (rules.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return rules.Outcome{}, err
	}

	uow := h.uowFactory.Create()

	if outcome, ok, err := h.checkGuards(ctx, uow, cmd); err != nil || !ok {
		return outcome, err
	}

	return rules.OK(rules.Confirmation(messages.VerificationCancelPrompt)), nil
}

// HandleConfirm cancels the round after operator confirmation.
func (h *CancelVerificationCommandHandler) HandleConfirm(
	ctx context.Context,
	cmd CancelVerificationCommand,
) (rules.Outcome, error) {
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

	outcome, ok, err := h.checkGuards(ctx, uow, cmd)
	if err != nil || !ok {
		return outcome, err
	}

	packedRepo := uow.PackedItemRepository()

	all, err := packedRepo.GetAllByShipmentID(ctx, cmd.ShipmentID())
	if err != nil {
		return rules.Outcome{}, err
	}
	for _, packed := range all {
		if !packed.IsVerified() {
			continue
		}
		packed.ResetVerification()
		if err = packedRepo.Update(ctx, packed); err != nil {
			return rules.Outcome{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	return rules.OK(rules.Success(messages.VerificationCancelDone)).
		WithLink("next", shipmentDetailsLink(cmd.ShipmentID())), nil
}

// checkGuards loads the shipment and evaluates both cancellation guards.
// The bool result is false when a guard rejected the cancellation.
func (h *CancelVerificationCommandHandler) checkGuards(
	ctx context.Context,
	uow PackingUoW,
	cmd CancelVerificationCommand,
) (rules.Outcome, bool, error) {
	aggregate, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return rules.BadRequest(
				rules.Warn(messages.NameShipmentNotFound, messages.ShipmentNotFound)), false, nil
		}
		return rules.Outcome{}, false, err
	}
	if aggregate.IsCompleted() {
		return rules.BadRequest(
			rules.Warn(messages.NameVerificationShipmentDone, messages.VerificationShipmentDone)), false, nil
	}

	ineligible, err := uow.PackedItemRepository().CountIneligibleByShipmentID(ctx, aggregate.ID())
	if err != nil {
		return rules.Outcome{}, false, err
	}
	if ineligible > 0 {
		return rules.BadRequest(
			rules.Warn(messages.NameVerificationIneligible, messages.VerificationIneligible)), false, nil
	}

	return rules.Outcome{}, true, nil
}
