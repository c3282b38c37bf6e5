package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrVerifyItemCommandIsNotConstructed = errors.New(
	"VerifyItemCommand must be created via NewVerifyItemCommand constructor",
)

// VerifyItemCommand represents the second scan of a packed unit.
type VerifyItemCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	unitNumber  string
	productCode string
	employeeID  string

	guard guard.ConstructorGuard
}

// NewVerifyItemCommand creates a command to verify a packed unit.
func NewVerifyItemCommand(
	shipmentID kernel.UUID,
	unitNumber string,
	productCode string,
	employeeID string,
) (VerifyItemCommand, error) {
	command := VerifyItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setUnitNumber(unitNumber),
		command.setProductCode(productCode),
		command.setEmployeeID(employeeID),
	); err != nil {
		return VerifyItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyItemCommand) Validate() error {
	return c.guard.Validate(ErrVerifyItemCommandIsNotConstructed)
}

// ShipmentID returns the shipment under verification.
func (c VerifyItemCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// UnitNumber returns the scanned unit number.
func (c VerifyItemCommand) UnitNumber() string { return c.unitNumber }

// ProductCode returns the scanned product code.
func (c VerifyItemCommand) ProductCode() string { return c.productCode }

// EmployeeID returns the verifying operator.
func (c VerifyItemCommand) EmployeeID() string { return c.employeeID }

func (c *VerifyItemCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *VerifyItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *VerifyItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *VerifyItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
