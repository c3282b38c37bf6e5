package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCompleteShipmentCommandIsNotConstructed = errors.New(
	"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
)

// CompleteShipmentCommand represents a request to close a shipment and hand
// it to the carrier.
type CompleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	employeeID string

	guard guard.ConstructorGuard
}

// NewCompleteShipmentCommand creates a command to complete a shipment.
func NewCompleteShipmentCommand(shipmentID kernel.UUID, employeeID string) (CompleteShipmentCommand, error) {
	command := CompleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return CompleteShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being completed.
func (c CompleteShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// EmployeeID returns the completing operator.
func (c CompleteShipmentCommand) EmployeeID() string { return c.employeeID }

func (c *CompleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CompleteShipmentCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
