package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/rules"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// PackItemCommandHandler runs the packing pipeline for one scanned unit:
// eligibility with the inventory authority, order criteria, visual inspection,
// duplicate and quantity guards, then the insert that resets the shipment's
// verification round.
//
// The inventory call happens outside the transaction; the completed-shipment
// check, the counts and the unique index on the scanned pair are re-evaluated
// inside it, so a lost race surfaces as a rule outcome instead of a stale
// write.
type PackItemCommandHandler struct {
	uowFactory PackingUoWFactory
	inventory  ports.InventoryGateway
	config     ports.ConfigGateway
}

// NewPackItemCommandHandler creates a handler for packing operations.
func NewPackItemCommandHandler(
	uowFactory PackingUoWFactory,
	inventory ports.InventoryGateway,
	config ports.ConfigGateway,
) PackItemCommandHandler {
	return PackItemCommandHandler{
		uowFactory: uowFactory,
		inventory:  inventory,
		config:     config,
	}
}

// Handle processes the pack command. Business rejections come back as a
// failed outcome; the error return is reserved for infrastructure faults.
func (h *PackItemCommandHandler) Handle(ctx context.Context, cmd PackItemCommand) (rules.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return rules.Outcome{}, err
	}

	uow := h.uowFactory.Create()

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
		return rules.Outcome{}, err
	}
	if aggregate.IsCompleted() {
		return rules.BadRequest(
			rules.Warn(messages.NameShipmentCompleted, messages.ShipmentCompleted)), nil
	}

	validation, err := h.inventory.Validate(ctx, cmd.UnitNumber(), cmd.ProductCode(), aggregate.LocationCode())
	if err != nil {
		if errors.Is(err, ports.ErrInventoryServiceUnavailable) {
			return rules.BadRequest(
				rules.System(messages.NameInventoryServiceIsDown, messages.InventoryServiceDown)), nil
		}
		return rules.Outcome{}, err
	}

	if outcome, ok := checkOrderCriteria(aggregate, item, validation); !ok {
		return outcome, nil
	}

	visualActive, err := h.config.VisualInspectionActive(ctx)
	if err != nil {
		return rules.Outcome{}, err
	}
	secondActive, err := h.config.SecondVerificationActive(ctx)
	if err != nil {
		return rules.Outcome{}, err
	}

	if visualActive && !cmd.VisualInspectionPassed() {
		reasons, reasonsErr := h.config.VisualInspectionDiscardReasons(ctx)
		if reasonsErr != nil {
			return rules.Outcome{}, reasonsErr
		}

		outcome := rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaInspection, messages.ProductCriteriaInspection))
		if validation.Record != nil {
			outcome = outcome.WithResult("inventory", *validation.Record)
		}
		return outcome.WithResult("reasons", toAnySlice(reasons)...), nil
	}

	if err = uow.Begin(ctx); err != nil {
		return rules.Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packedRepo := uow.PackedItemRepository()

	used, err := packedRepo.CountByShipmentAndUnit(ctx, aggregate.ID(), cmd.UnitNumber(), cmd.ProductCode())
	if err != nil {
		return rules.Outcome{}, err
	}
	if used > 0 {
		return rules.BadRequest(
			rules.Warn(messages.NameProductAlreadyUsed, messages.ProductAlreadyUsed)), nil
	}

	packedCount, err := packedRepo.CountByItemID(ctx, item.ID())
	if err != nil {
		return rules.Outcome{}, err
	}
	if !item.CanAcceptMoreUnits(int(packedCount)) {
		return rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaQuantity, messages.ProductCriteriaQuantity)), nil
	}

	// Re-read the aggregate inside the transaction; a concurrent completion
	// between the gateway call and here must reject the pack.
	aggregate, err = uow.ShipmentRepository().Get(ctx, item.ShipmentID())
	if err != nil {
		return rules.Outcome{}, err
	}
	if openErr := aggregate.EnsureOpen(); openErr != nil {
		return rules.BadRequest(
			rules.Warn(messages.NameShipmentCompleted, messages.ShipmentCompleted)), nil
	}

	packed, err := newPackedItemFromValidation(cmd, item, validation, visualActive, secondActive)
	if err != nil {
		return rules.Outcome{}, err
	}

	if err = packedRepo.Add(ctx, packed); err != nil {
		if errors.Is(err, ports.ErrDuplicatePackedUnit) {
			return rules.BadRequest(
				rules.Warn(messages.NameProductAlreadyUsed, messages.ProductAlreadyUsed)), nil
		}
		return rules.Outcome{}, err
	}

	// Any change to the packed set invalidates the verification round.
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

	return rules.OK().WithResult("results", view), nil
}

// checkOrderCriteria evaluates the scanned unit against the order criteria.
// The bool result is false when the unit is rejected.
func checkOrderCriteria(
	aggregate *shipment.Shipment,
	item *shipment.ShipmentItem,
	validation ports.InventoryValidation,
) (rules.Outcome, bool) {
	if validation.HasNotifications() {
		// Customer shipments relay the authority's own findings verbatim so
		// the operator sees what condition disqualified the unit.
		if !aggregate.IsInternalTransfer() {
			outcome := rules.BadRequest(inventoryNotifications(validation.Notifications)...)
			if validation.Record != nil {
				outcome = outcome.WithResult("inventory", *validation.Record)
			}
			return outcome, false
		}

		allowed := aggregate.AllowedInventoryNotificationTypes()
		if !validation.HasOnlyNotificationTypes(allowed) {
			outcome := rules.BadRequest(
				rules.Warn(messages.NameOrderCriteriaDoesNotMatch, messages.OrderCriteriaMismatch))
			return outcome.WithResult("notifications", toAnySlice(validation.Notifications)...), false
		}
	}

	record := validation.Record
	if record == nil {
		return rules.BadRequest(
			rules.Warn(messages.NameOrderCriteriaDoesNotMatch, messages.OrderCriteriaMismatch)), false
	}

	if record.ProductFamily != item.ProductFamily() {
		return rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaFamily, messages.ProductCriteriaFamily)), false
	}

	if !item.BloodType().Matches(record.AboRh) {
		return rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaBloodType, messages.ProductCriteriaBloodType)), false
	}

	if aggregate.ProductCategory() != "" && record.TemperatureCategory != aggregate.ProductCategory() {
		return rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaTemperature, messages.ProductCriteriaTemperature)), false
	}

	if aggregate.QuarantinedProducts() &&
		!validation.HasNotificationType(shipment.NotificationInventoryQuarantined) {
		return rules.BadRequest(
			rules.Warn(messages.NameProductCriteriaQuarantined, messages.ProductCriteriaQuarantined)), false
	}

	if aggregate.LabelStatus() == shipment.LabelStatusUnlabeled && record.IsLabeled {
		return rules.BadRequest(
			rules.Warn(messages.NameShipmentUnlabeled, messages.ShipmentUnlabeled)), false
	}

	return rules.Outcome{}, true
}

// inventoryNotifications converts the authority's findings into outcome
// notifications, keeping their name, type, reason and action intact.
func inventoryNotifications(notifications []ports.InventoryNotification) []rules.Notification {
	out := make([]rules.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, rules.Notification{
			StatusCode:       http.StatusBadRequest,
			NotificationType: rules.NotificationType(n.ErrorType),
			Name:             n.ErrorName,
			Message:          n.Message,
			Reason:           n.Reason,
			Action:           n.Action,
		})
	}
	return out
}

func newPackedItemFromValidation(
	cmd PackItemCommand,
	item *shipment.ShipmentItem,
	validation ports.InventoryValidation,
	visualActive, secondActive bool,
) (*shipment.PackedItem, error) {
	visualInspection := shipment.VisualInspectionDisabled
	if visualActive {
		visualInspection = shipment.VisualInspectionSatisfactory
	}

	secondVerification := shipment.SecondVerificationDisabled
	if secondActive {
		secondVerification = shipment.SecondVerificationPending
	}

	params := shipment.NewPackedItemParams{
		ID:                 kernel.NewUUID(),
		ShipmentItemID:     item.ID(),
		UnitNumber:         cmd.UnitNumber(),
		ProductCode:        cmd.ProductCode(),
		BloodType:          item.BloodType(),
		PackedByEmployeeID: cmd.EmployeeID(),
		VisualInspection:   visualInspection,
		SecondVerification: secondVerification,
	}
	if record := validation.Record; record != nil {
		params.ProductDescription = record.ProductDescription
		params.ProductFamily = record.ProductFamily
		params.AboRh = record.AboRh
		params.ProductStatus = record.Status
		params.ExpirationDate = record.ExpirationDate
		params.CollectionDate = record.CollectionDate
	}

	return shipment.NewPackedItem(params)
}

func resetVerificationRound(
	ctx context.Context,
	repo ports.PackedItemRepository,
	shipmentID kernel.UUID,
) error {
	all, err := repo.GetAllByShipmentID(ctx, shipmentID)
	if err != nil {
		return err
	}

	for _, packed := range all {
		if !packed.IsVerified() {
			continue
		}
		packed.ResetVerification()
		if err = repo.Update(ctx, packed); err != nil {
			return err
		}
	}

	return nil
}

func loadShipmentItemView(
	ctx context.Context,
	uow PackingUoW,
	item *shipment.ShipmentItem,
) (ShipmentItemView, error) {
	packed, err := uow.PackedItemRepository().GetAllByItemID(ctx, item.ID())
	if err != nil {
		return ShipmentItemView{}, err
	}

	shortDates, err := uow.ShortDateProductRepository().GetAllByItemID(ctx, item.ID())
	if err != nil {
		return ShipmentItemView{}, err
	}

	return newShipmentItemView(item, packed, shortDates), nil
}

// toAnySlice widens a typed slice for the results map.
func toAnySlice[T any](values []T) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}

	return out
}

// shipmentDetailsLink renders the navigation link to a shipment's details.
func shipmentDetailsLink(shipmentID kernel.UUID) string {
	return fmt.Sprintf(messages.ShipmentDetailsURL, shipmentID.String())
}

// shipmentVerificationLink renders the navigation link to the verification
// screen of a shipment.
func shipmentVerificationLink(shipmentID kernel.UUID) string {
	return fmt.Sprintf(messages.ShipmentVerificationURL, shipmentID.String())
}
