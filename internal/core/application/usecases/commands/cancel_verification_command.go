package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCancelVerificationCommandIsNotConstructed = errors.New(
	"CancelVerificationCommand must be created via NewCancelVerificationCommand constructor",
)

// CancelVerificationCommand represents a request to throw away a shipment's
// verification round and start over.
type CancelVerificationCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	employeeID string

	guard guard.ConstructorGuard
}

// NewCancelVerificationCommand creates a command to cancel a verification round.
func NewCancelVerificationCommand(shipmentID kernel.UUID, employeeID string) (CancelVerificationCommand, error) {
	command := CancelVerificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setEmployeeID(employeeID),
	); err != nil {
		return CancelVerificationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelVerificationCommand) Validate() error {
	return c.guard.Validate(ErrCancelVerificationCommandIsNotConstructed)
}

// ShipmentID returns the shipment whose round is canceled.
func (c CancelVerificationCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// EmployeeID returns the canceling operator.
func (c CancelVerificationCommand) EmployeeID() string { return c.employeeID }

func (c *CancelVerificationCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CancelVerificationCommand) setEmployeeID(employeeID string) error {
	if employeeID == "" {
		return ErrEmployeeIDIsRequired
	}

	c.employeeID = employeeID
	return nil
}
