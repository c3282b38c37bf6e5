package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

// RevalidateShipmentsCommand triggers a sweep of every open shipment,
// re-checking each packed unit against the inventory authority. Units that
// went bad since packing are flagged ineligible so operators see them before
// attempting completion.
//
// Example:
//
//	cmd := NewRevalidateShipmentsCommand()
//	handler := NewRevalidateShipmentsCommandHandler(uowFactory, inventory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Revalidation sweep failed: %v", err)
//	}
type RevalidateShipmentsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrRevalidateShipmentsCommandIsNotConstructed = errors.New(
		"RevalidateShipmentsCommand must be created via NewRevalidateShipmentsCommand constructor",
	)

	// ErrNoOpenShipments is returned when the sweep finds nothing to check.
	// An expected business scenario, not a failure.
	ErrNoOpenShipments = errors.New("no open shipments found")
)

// NewRevalidateShipmentsCommand creates a command to trigger a revalidation
// sweep. This is a parameterless command that processes all open shipments.
func NewRevalidateShipmentsCommand() RevalidateShipmentsCommand {
	command := RevalidateShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrRevalidateShipmentsCommandIsNotConstructed if validation fails.
func (c *RevalidateShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrRevalidateShipmentsCommandIsNotConstructed)
}
