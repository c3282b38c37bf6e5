package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
)

// ErrShortDateProductIsNotConstructed is returned when a ShortDateProduct was
// not created through its constructor.
var ErrShortDateProductIsNotConstructed = errors.New(
	"ShortDateProduct must be created via NewShortDateProduct constructor",
)

// ShortDateProduct flags a near-expiry unit the packer should prefer for a
// demand line. Purely informational: it never gates a transition.
type ShortDateProduct struct {
	id             kernel.UUID
	shipmentItemID kernel.UUID
	unitNumber     string
	productCode    string
	expirationDate *time.Time

	isConstructed bool
}

// NewShortDateProduct creates a short-date flag for a demand line.
func NewShortDateProduct(
	id kernel.UUID,
	shipmentItemID kernel.UUID,
	unitNumber string,
	productCode string,
	expirationDate *time.Time,
) (*ShortDateProduct, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentItemID.Validate(),
		validateRequired("unitNumber", unitNumber),
		validateRequired("productCode", productCode),
	); err != nil {
		return nil, err
	}

	return &ShortDateProduct{
		id:             id,
		shipmentItemID: shipmentItemID,
		unitNumber:     unitNumber,
		productCode:    productCode,
		expirationDate: expirationDate,
		isConstructed:  true,
	}, nil
}

// RestoreShortDateProduct reconstructs a short-date flag from persistence.
func RestoreShortDateProduct(
	id kernel.UUID,
	shipmentItemID kernel.UUID,
	unitNumber string,
	productCode string,
	expirationDate *time.Time,
) (*ShortDateProduct, error) {
	if err := errors.Join(id.Validate(), shipmentItemID.Validate()); err != nil {
		return nil, err
	}

	return &ShortDateProduct{
		id:             id,
		shipmentItemID: shipmentItemID,
		unitNumber:     unitNumber,
		productCode:    productCode,
		expirationDate: expirationDate,
		isConstructed:  true,
	}, nil
}

// Validate ensures the ShortDateProduct instance was properly constructed.
func (s *ShortDateProduct) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShortDateProductIsNotConstructed
	}
	return nil
}

// ID returns the flag's unique identifier.
func (s *ShortDateProduct) ID() kernel.UUID { return s.id }

// ShipmentItemID returns the demand line the flag belongs to.
func (s *ShortDateProduct) ShipmentItemID() kernel.UUID { return s.shipmentItemID }

// UnitNumber returns the flagged unit's number.
func (s *ShortDateProduct) UnitNumber() string { return s.unitNumber }

// ProductCode returns the flagged unit's product code.
func (s *ShortDateProduct) ProductCode() string { return s.productCode }

// ExpirationDate returns the unit's expiration date, if known.
func (s *ShortDateProduct) ExpirationDate() *time.Time { return s.expirationDate }
