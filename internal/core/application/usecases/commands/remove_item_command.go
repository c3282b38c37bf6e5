package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to pull an ineligible unit out of a
// shipment, leaving an audit row behind.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	unitNumber  string
	productCode string
	employeeID  string

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a flagged unit.
func NewRemoveItemCommand(
	shipmentID kernel.UUID,
	unitNumber string,
	productCode string,
	employeeID string,
) (RemoveItemCommand, error) {
	command := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setUnitNumber(unitNumber),
		command.setProductCode(productCode),
		command.setEmployeeID(employeeID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// ShipmentID returns the shipment losing the unit.
func (c RemoveItemCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// UnitNumber returns the scanned unit number.
func (c RemoveItemCommand) UnitNumber() string { return c.unitNumber }

// ProductCode returns the scanned product code.
func (c RemoveItemCommand) ProductCode() string { return c.productCode }

// EmployeeID returns the removing operator.
func (c RemoveItemCommand) EmployeeID() string { return c.employeeID }

func (c *RemoveItemCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RemoveItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *RemoveItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *RemoveItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
