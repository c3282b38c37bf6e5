// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, rule evaluation,
// transaction management, and persistence.
package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ShipmentItemRepoFactory provides access to the demand-line repository within a transaction.
	ShipmentItemRepoFactory interface {
		ShipmentItemRepository() ports.ShipmentItemRepository
	}

	// PackedItemRepoFactory provides access to the packed-unit repository within a transaction.
	PackedItemRepoFactory interface {
		PackedItemRepository() ports.PackedItemRepository
	}

	// RemovedItemRepoFactory provides access to the removal audit repository within a transaction.
	RemovedItemRepoFactory interface {
		RemovedItemRepository() ports.RemovedItemRepository
	}

	// ShortDateRepoFactory provides access to the short-date flag repository within a transaction.
	ShortDateRepoFactory interface {
		ShortDateProductRepository() ports.ShortDateProductRepository
	}

	// ShipmentUoW manages transactions for shipment creation. Used when a
	// command writes the aggregate, its demand lines and short-date flags
	// but never touches packed units.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentItemRepoFactory
		ShortDateRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// PackingUoW manages transactions for the packing workflow: packing,
	// unpacking, verification and completion.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   packedRepo := uow.PackedItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PackingUoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentItemRepoFactory
		PackedItemRepoFactory
		ShortDateRepoFactory
	}

	// PackingUoWFactory creates new packing unit of work instances.
	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// UoW manages transactions across every shipment repository, including
	// the removal audit. Used by commands that move packed units into the
	// removed set.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		ShipmentItemRepoFactory
		PackedItemRepoFactory
		RemovedItemRepoFactory
		ShortDateRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
