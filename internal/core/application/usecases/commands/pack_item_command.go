package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrPackItemCommandIsNotConstructed = errors.New(
		"PackItemCommand must be created via NewPackItemCommand constructor",
	)
	ErrUnitNumberIsRequired  = errors.New("unit number is required")
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrEmployeeIDIsRequired  = errors.New("employee id is required")
)

// PackItemCommand represents a request to pack a scanned unit against one
// demand line of a shipment.
type PackItemCommand struct { //nolint:recvcheck //using for validation
	shipmentItemID         kernel.UUID
	unitNumber             string
	productCode            string
	employeeID             string
	visualInspectionPassed bool

	guard guard.ConstructorGuard
}

// NewPackItemCommand creates a command to pack a scanned unit.
// visualInspectionPassed carries the operator's answer to the visual
// inspection prompt; callers pass true when the prompt is not shown.
func NewPackItemCommand(
	shipmentItemID kernel.UUID,
	unitNumber string,
	productCode string,
	employeeID string,
	visualInspectionPassed bool,
) (PackItemCommand, error) {
	command := PackItemCommand{
		visualInspectionPassed: visualInspectionPassed,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentItemID(shipmentItemID),
		command.setUnitNumber(unitNumber),
		command.setProductCode(productCode),
		command.setEmployeeID(employeeID),
	); err != nil {
		return PackItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PackItemCommand) Validate() error {
	return c.guard.Validate(ErrPackItemCommandIsNotConstructed)
}

// ShipmentItemID returns the demand line receiving the unit.
func (c PackItemCommand) ShipmentItemID() kernel.UUID { return c.shipmentItemID }

// UnitNumber returns the scanned unit number.
func (c PackItemCommand) UnitNumber() string { return c.unitNumber }

// ProductCode returns the scanned product code.
func (c PackItemCommand) ProductCode() string { return c.productCode }

// EmployeeID returns the packing operator.
func (c PackItemCommand) EmployeeID() string { return c.employeeID }

// VisualInspectionPassed reports the operator's visual inspection answer.
func (c PackItemCommand) VisualInspectionPassed() bool { return c.visualInspectionPassed }

func (c *PackItemCommand) setShipmentItemID(shipmentItemID kernel.UUID) error {
	if err := shipmentItemID.Validate(); err != nil {
		return err
	}

	c.shipmentItemID = shipmentItemID
	return nil
}

func (c *PackItemCommand) setUnitNumber(unitNumber string) error {
	if unitNumber == "" {
		return ErrUnitNumberIsRequired
	}

	c.unitNumber = unitNumber
	return nil
}

func (c *PackItemCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}

	c.productCode = productCode
	return nil
}

func (c *PackItemCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
