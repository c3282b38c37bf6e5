package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// ErrRemovedItemIsNotConstructed is returned when a RemovedItem was not
// created through NewRemovedItemFromPacked or RestoreRemovedItem.
var ErrRemovedItemIsNotConstructed = errors.New(
	"RemovedItem must be created via NewRemovedItemFromPacked constructor",
)

// RemovedItem is the append-only audit record of a packed unit pulled from a
// shipment because the inventory authority flagged it ineligible. It is never
// mutated or deleted; its existence is evidence the physical unit left the box.
type RemovedItem struct {
	id                  kernel.UUID
	shipmentID          kernel.UUID
	shipmentItemID      kernel.UUID
	unitNumber          string
	productCode         string
	ineligibleStatus    IneligibleStatus
	action              string
	reason              string
	message             string
	removedByEmployeeID string
	removeDate          time.Time

	isConstructed bool
}

// NewRemovedItemFromPacked builds the audit record for a flagged packed unit.
// The diagnostic fields are copied verbatim from the unit's ineligible detail.
func NewRemovedItemFromPacked(
	id kernel.UUID,
	shipmentID kernel.UUID,
	packed *PackedItem,
	employeeID string,
	at time.Time,
) (*RemovedItem, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		packed.Validate(),
		validateRequired("employeeId", employeeID),
	); err != nil {
		return nil, err
	}
	detail := packed.Ineligible()
	if detail == nil {
		return nil, errors.New("packed unit is not flagged ineligible")
	}

	return &RemovedItem{
		id:                  id,
		shipmentID:          shipmentID,
		shipmentItemID:      packed.ShipmentItemID(),
		unitNumber:          packed.UnitNumber(),
		productCode:         packed.ProductCode(),
		ineligibleStatus:    detail.Status,
		action:              detail.Action,
		reason:              detail.Reason,
		message:             detail.Message,
		removedByEmployeeID: employeeID,
		removeDate:          at,
		isConstructed:       true,
	}, nil
}

// RestoreRemovedItemParams carries the persisted state of a removal audit row.
type RestoreRemovedItemParams struct {
	ID                  kernel.UUID
	ShipmentID          kernel.UUID
	ShipmentItemID      kernel.UUID
	UnitNumber          string
	ProductCode         string
	IneligibleStatus    IneligibleStatus
	Action              string
	Reason              string
	Message             string
	RemovedByEmployeeID string
	RemoveDate          time.Time
}

// RestoreRemovedItem reconstructs a removal audit row from persistence.
func RestoreRemovedItem(p RestoreRemovedItemParams) (*RemovedItem, error) {
	if err := errors.Join(p.ID.Validate(), p.ShipmentID.Validate()); err != nil {
		return nil, err
	}

	return &RemovedItem{
		id:                  p.ID,
		shipmentID:          p.ShipmentID,
		shipmentItemID:      p.ShipmentItemID,
		unitNumber:          p.UnitNumber,
		productCode:         p.ProductCode,
		ineligibleStatus:    p.IneligibleStatus,
		action:              p.Action,
		reason:              p.Reason,
		message:             p.Message,
		removedByEmployeeID: p.RemovedByEmployeeID,
		removeDate:          p.RemoveDate,
		isConstructed:       true,
	}, nil
}

// Validate ensures the RemovedItem instance was properly constructed.
func (r *RemovedItem) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRemovedItemIsNotConstructed
	}
	return nil
}

// ID returns the audit row's unique identifier.
func (r *RemovedItem) ID() kernel.UUID { return r.id }

// ShipmentID returns the shipment the unit was removed from.
func (r *RemovedItem) ShipmentID() kernel.UUID { return r.shipmentID }

// ShipmentItemID returns the demand line the unit was packed against.
func (r *RemovedItem) ShipmentItemID() kernel.UUID { return r.shipmentItemID }

// UnitNumber returns the removed unit's number.
func (r *RemovedItem) UnitNumber() string { return r.unitNumber }

// ProductCode returns the removed unit's product code.
func (r *RemovedItem) ProductCode() string { return r.productCode }

// IneligibleStatus returns the condition that made the unit ineligible.
func (r *RemovedItem) IneligibleStatus() IneligibleStatus { return r.ineligibleStatus }

// Action returns the operator action copied from the inventory diagnostics.
func (r *RemovedItem) Action() string { return r.action }

// Reason returns the reason copied from the inventory diagnostics.
func (r *RemovedItem) Reason() string { return r.reason }

// Message returns the message copied from the inventory diagnostics.
func (r *RemovedItem) Message() string { return r.message }

// RemovedByEmployeeID returns the employee who pulled the unit.
func (r *RemovedItem) RemovedByEmployeeID() string { return r.removedByEmployeeID }

// RemoveDate returns when the unit was pulled.
func (r *RemovedItem) RemoveDate() time.Time { return r.removeDate }
