package shipment

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrShipmentItemIsNotConstructed is returned when a ShipmentItem was not
// created through NewShipmentItem or RestoreShipmentItem.
var ErrShipmentItemIsNotConstructed = errors.New(
	"ShipmentItem must be created via NewShipmentItem constructor",
)

// ShipmentItem is one demand line within a shipment: how many units of a
// product family and blood type the order asks for. Items are immutable once
// created; Quantity is the ceiling packed units may not exceed.
type ShipmentItem struct {
	id            kernel.UUID
	shipmentID    kernel.UUID
	productFamily string
	bloodType     BloodType
	quantity      int
	comments      string

	isConstructed bool
}

// NewShipmentItem creates a demand line for a shipment.
func NewShipmentItem(
	id kernel.UUID,
	shipmentID kernel.UUID,
	productFamily string,
	bloodType BloodType,
	quantity int,
	comments string,
) (*ShipmentItem, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		validateRequired("productFamily", productFamily),
		bloodType.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return &ShipmentItem{
		id:            id,
		shipmentID:    shipmentID,
		productFamily: productFamily,
		bloodType:     bloodType,
		quantity:      quantity,
		comments:      comments,
		isConstructed: true,
	}, nil
}

// RestoreShipmentItem reconstructs a demand line from persistence.
func RestoreShipmentItem(
	id kernel.UUID,
	shipmentID kernel.UUID,
	productFamily string,
	bloodType BloodType,
	quantity int,
	comments string,
) (*ShipmentItem, error) {
	if err := errors.Join(id.Validate(), shipmentID.Validate()); err != nil {
		return nil, err
	}

	return &ShipmentItem{
		id:            id,
		shipmentID:    shipmentID,
		productFamily: productFamily,
		bloodType:     bloodType,
		quantity:      quantity,
		comments:      comments,
		isConstructed: true,
	}, nil
}

// Validate ensures the ShipmentItem instance was properly constructed.
func (i *ShipmentItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrShipmentItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *ShipmentItem) ID() kernel.UUID { return i.id }

// ShipmentID returns the owning shipment's identifier.
func (i *ShipmentItem) ShipmentID() kernel.UUID { return i.shipmentID }

// ProductFamily returns the ordered product family.
func (i *ShipmentItem) ProductFamily() string { return i.productFamily }

// BloodType returns the ordered blood type criterion.
func (i *ShipmentItem) BloodType() BloodType { return i.bloodType }

// Quantity returns the ordered unit count.
func (i *ShipmentItem) Quantity() int { return i.quantity }

// Comments returns the free-form line comments.
func (i *ShipmentItem) Comments() string { return i.comments }

// CanAcceptMoreUnits reports whether another unit may be packed given the
// current packed count. The count is re-read immediately before the write, so
// a race lost here surfaces as a quantity rejection on retry rather than an
// over-packed line.
func (i *ShipmentItem) CanAcceptMoreUnits(packedCount int) bool {
	return packedCount < i.quantity
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	return nil
}
