package ports

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ErrDuplicatePackedUnit signals that the unique index on the scanned pair
// rejected an insert. It surfaces a lost race between two packers.
var ErrDuplicatePackedUnit = errors.New("unit is already packed in this shipment")

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByItemID retrieves the shipment owning the given demand line.
	GetByItemID(ctx context.Context, itemID kernel.UUID) (*shipment.Shipment, error)

	// GetAllOpen retrieves every shipment still in Open status.
	// Used by the revalidation job to sweep packed units against inventory.
	GetAllOpen(ctx context.Context) ([]*shipment.Shipment, error)
}

// ShipmentItemRepository defines the persistence contract for demand lines.
type ShipmentItemRepository interface {
	// Add persists a new demand line.
	Add(ctx context.Context, item *shipment.ShipmentItem) error

	// Get retrieves a demand line by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentItem, error)

	// GetAllByShipmentID retrieves all demand lines of a shipment.
	GetAllByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.ShipmentItem, error)
}

// PackedItemRepository defines the persistence contract for packed units.
// A partial unique index on (unit number, product code) per shipment backs
// the product-already-used invariant at write time.
type PackedItemRepository interface {
	// Add persists a freshly packed unit.
	Add(ctx context.Context, item *shipment.PackedItem) error

	// Update persists changes to a packed unit.
	Update(ctx context.Context, item *shipment.PackedItem) error

	// Delete removes a packed unit record entirely.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetByShipmentAndUnit finds the packed unit matching the scanned pair
	// within a shipment. Returns errs.ObjectNotFoundError when absent.
	GetByShipmentAndUnit(ctx context.Context, shipmentID kernel.UUID, unitNumber, productCode string) (*shipment.PackedItem, error)

	// GetIneligibleByShipmentAndUnit finds a packed unit flagged ineligible
	// matching the scanned pair. Returns errs.ObjectNotFoundError when absent.
	GetIneligibleByShipmentAndUnit(ctx context.Context, shipmentID kernel.UUID, unitNumber, productCode string) (*shipment.PackedItem, error)

	// GetAllByItemID retrieves the packed units of one demand line.
	GetAllByItemID(ctx context.Context, itemID kernel.UUID) ([]*shipment.PackedItem, error)

	// GetAllByShipmentID retrieves every packed unit of a shipment.
	GetAllByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.PackedItem, error)

	// GetAllVerifiedByShipmentID retrieves the units whose second
	// verification is completed.
	GetAllVerifiedByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.PackedItem, error)

	// GetAllIneligibleByShipmentID retrieves the to-be-removed set.
	GetAllIneligibleByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.PackedItem, error)

	// CountByItemID counts packed units of one demand line.
	CountByItemID(ctx context.Context, itemID kernel.UUID) (int64, error)

	// CountByShipmentAndUnit counts packed units matching the scanned pair
	// across the whole shipment.
	CountByShipmentAndUnit(ctx context.Context, shipmentID kernel.UUID, unitNumber, productCode string) (int64, error)

	// CountPendingVerificationByShipmentID counts units still awaiting their
	// second scan.
	CountPendingVerificationByShipmentID(ctx context.Context, shipmentID kernel.UUID) (int64, error)

	// CountIneligibleByShipmentID counts units flagged ineligible and not
	// yet removed.
	CountIneligibleByShipmentID(ctx context.Context, shipmentID kernel.UUID) (int64, error)
}

// RemovedItemRepository defines the persistence contract for removal audit
// rows. Rows are append-only; there is no update or delete.
type RemovedItemRepository interface {
	// Add persists a removal audit row.
	Add(ctx context.Context, item *shipment.RemovedItem) error

	// GetAllByShipmentID retrieves the removal audit of a shipment.
	GetAllByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*shipment.RemovedItem, error)
}

// ShortDateProductRepository defines the persistence contract for short-date
// flags created alongside the shipment.
type ShortDateProductRepository interface {
	// Add persists a short-date flag.
	Add(ctx context.Context, product *shipment.ShortDateProduct) error

	// GetAllByItemID retrieves the short-date flags of one demand line.
	GetAllByItemID(ctx context.Context, itemID kernel.UUID) ([]*shipment.ShortDateProduct, error)
}
