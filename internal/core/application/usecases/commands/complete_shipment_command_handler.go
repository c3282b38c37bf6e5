package commands

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// CompleteShipmentCommandHandler closes a shipment. Before the close, every
// unit going out the door is revalidated with the inventory authority; units
// that went bad since packing are flagged ineligible and the completion is
// rejected so the operator can remove them. A successful close resolves the
// delivering facility and publishes the completed event after commit.
type CompleteShipmentCommandHandler struct {
	uowFactory PackingUoWFactory
	inventory  ports.InventoryGateway
	config     ports.ConfigGateway
	facility   ports.FacilityGateway
	publisher  ports.ShipmentEventPublisher
}

// NewCompleteShipmentCommandHandler creates a handler for shipment completion.
func NewCompleteShipmentCommandHandler(
	uowFactory PackingUoWFactory,
	inventory ports.InventoryGateway,
	config ports.ConfigGateway,
	facility ports.FacilityGateway,
	publisher ports.ShipmentEventPublisher,
) CompleteShipmentCommandHandler {
	return CompleteShipmentCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		config:     config,
		facility:   facility,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
func (h *CompleteShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteShipmentCommand,
) (rules.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return rules.Outcome{}, err
	}

	uow := h.uowFactory.Create()

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

	secondActive, err := h.config.SecondVerificationActive(ctx)
	if err != nil {
		return rules.Outcome{}, err
	}

	packedRepo := uow.PackedItemRepository()

	var units []*shipment.PackedItem
	if secondActive {
		pending, pendingErr := packedRepo.CountPendingVerificationByShipmentID(ctx, aggregate.ID())
		if pendingErr != nil {
			return rules.Outcome{}, pendingErr
		}
		if pending > 0 {
			return rules.BadRequest(
				rules.Warn(messages.NameVerificationNotCompleted, messages.VerificationNotCompleted)).
				WithLink("next", shipmentVerificationLink(aggregate.ID())), nil
		}

		units, err = packedRepo.GetAllVerifiedByShipmentID(ctx, aggregate.ID())
	} else {
		units, err = packedRepo.GetAllByShipmentID(ctx, aggregate.ID())
	}
	if err != nil {
		return rules.Outcome{}, err
	}

	failed, outcome, err := h.revalidateUnits(ctx, aggregate, units)
	if err != nil {
		return rules.Outcome{}, err
	}
	if outcome.RuleCode != 0 {
		return outcome, nil
	}
	if len(failed) > 0 {
		return h.flagIneligibleUnits(ctx, uow, aggregate, failed)
	}

	return h.completeShipment(ctx, uow, aggregate, cmd.EmployeeID())
}

// failedValidation pairs a packed unit with the findings that disqualify it.
type failedValidation struct {
	unit          *shipment.PackedItem
	notifications []ports.InventoryNotification
}

// revalidateUnits re-checks every outgoing unit with the inventory authority.
// Internal transfers keep their tolerance for quarantined and unlabeled
// findings.
func (h *CompleteShipmentCommandHandler) revalidateUnits(
	ctx context.Context,
	aggregate *shipment.Shipment,
	units []*shipment.PackedItem,
) ([]failedValidation, rules.Outcome, error) {
	allowed := aggregate.AllowedInventoryNotificationTypes()

	var failed []failedValidation
	for _, unit := range units {
		validation, err := h.inventory.Validate(
			ctx, unit.UnitNumber(), unit.ProductCode(), aggregate.LocationCode())
		if err != nil {
			if errors.Is(err, ports.ErrInventoryServiceUnavailable) {
				outcome := rules.BadRequest(
					rules.System(messages.NameInventoryServiceIsDown, messages.InventoryServiceDown)).
					WithLink("next", shipmentVerificationLink(aggregate.ID()))
				return nil, outcome, nil
			}
			return nil, rules.Outcome{}, err
		}

		if !validation.HasNotifications() {
			continue
		}
		if aggregate.IsInternalTransfer() && validation.HasOnlyNotificationTypes(allowed) {
			continue
		}

		failed = append(failed, failedValidation{unit: unit, notifications: validation.Notifications})
	}

	return failed, rules.Outcome{}, nil
}

// flagIneligibleUnits persists the ineligible flags and rejects the
// completion with the failed validations.
func (h *CompleteShipmentCommandHandler) flagIneligibleUnits(
	ctx context.Context,
	uow PackingUoW,
	aggregate *shipment.Shipment,
	failed []failedValidation,
) (rules.Outcome, error) {
	if err := uow.Begin(ctx); err != nil {
		return rules.Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packedRepo := uow.PackedItemRepository()

	validations := make([]any, 0, len(failed))
	for _, f := range failed {
		first := f.notifications[0]
		f.unit.MarkIneligible(shipment.IneligibleDetail{
			Status:  shipment.IneligibleStatus(first.ErrorName),
			Action:  first.Action,
			Reason:  first.Reason,
			Message: first.Message,
		})
		if err := packedRepo.Update(ctx, f.unit); err != nil {
			return rules.Outcome{}, err
		}

		validations = append(validations, UnitValidationView{
			UnitNumber:    f.unit.UnitNumber(),
			ProductCode:   f.unit.ProductCode(),
			Notifications: f.notifications,
		})
	}

	if err := uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	return rules.BadRequest(
		rules.Warn(messages.NameShipmentValidationFailed, messages.ShipmentValidationFailed)).
		WithResult("validations", validations...).
		WithLink("next", shipmentVerificationLink(aggregate.ID())), nil
}

// completeShipment performs the close inside its own transaction, re-reading
// the aggregate so a concurrent completion is rejected.
func (h *CompleteShipmentCommandHandler) completeShipment(
	ctx context.Context,
	uow PackingUoW,
	aggregate *shipment.Shipment,
	employeeID string,
) (rules.Outcome, error) {
	if err := uow.Begin(ctx); err != nil {
		return rules.Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, aggregate.ID())
	if err != nil {
		return rules.Outcome{}, err
	}
	if openErr := aggregate.EnsureOpen(); openErr != nil {
		return rules.BadRequest(
			rules.Warn(messages.NameShipmentCompleted, messages.ShipmentCompleted)), nil
	}

	if err = aggregate.Complete(employeeID, time.Now().UTC()); err != nil {
		return rules.Outcome{}, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return rules.Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return rules.Outcome{}, err
	}

	var facilityView *ports.Facility
	if facility, facilityErr := h.facility.GetFacility(ctx, aggregate.LocationCode()); facilityErr == nil {
		facilityView = &facility
	}

	h.publisher.PublishShipmentCompleted(ctx, shipment.NewCompletedEvent(aggregate))

	view := newShipmentView(aggregate, facilityView)

	return rules.OK(rules.Success(messages.ShipmentCompletedOK)).
		WithResult("results", view).
		WithLink("next", shipmentDetailsLink(aggregate.ID())), nil
}
