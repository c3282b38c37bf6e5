package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrUnpackItemCommandIsNotConstructed = errors.New(
	"UnpackItemCommand must be created via NewUnpackItemCommand constructor",
)

// UnpackItemCommand represents a request to take a packed unit back out of a
// demand line before the shipment completes.
type UnpackItemCommand struct { //nolint:recvcheck //using for validation
	shipmentItemID kernel.UUID
	unitNumber     string
	productCode    string
	employeeID     string

	guard guard.ConstructorGuard
}

// NewUnpackItemCommand creates a command to unpack a scanned unit.
func NewUnpackItemCommand(
	shipmentItemID kernel.UUID,
	unitNumber string,
	productCode string,
	employeeID string,
) (UnpackItemCommand, error) {
	command := UnpackItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentItemID(shipmentItemID),
		command.setUnitNumber(unitNumber),
		command.setProductCode(productCode),
		command.setEmployeeID(employeeID),
	); err != nil {
		return UnpackItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnpackItemCommand) Validate() error {
	return c.guard.Validate(ErrUnpackItemCommandIsNotConstructed)
}

// ShipmentItemID returns the demand line losing the unit.
func (c UnpackItemCommand) ShipmentItemID() kernel.UUID { return c.shipmentItemID }

// UnitNumber returns the scanned unit number.
func (c UnpackItemCommand) UnitNumber() string { return c.unitNumber }

// ProductCode returns the scanned product code.
func (c UnpackItemCommand) ProductCode() string { return c.productCode }

// EmployeeID returns the unpacking operator.
func (c UnpackItemCommand) EmployeeID() string { return c.employeeID }

func (c *UnpackItemCommand) setShipmentItemID(shipmentItemID kernel.UUID) error {
	if err := shipmentItemID.Validate(); err != nil {
		return err
	}

	c.shipmentItemID = shipmentItemID
	return nil
}

func (c *UnpackItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *UnpackItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *UnpackItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
