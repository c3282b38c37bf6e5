// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Usage Pattern:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repository accessors work before Begin as well: they fall back to the main
// database connection when no transaction is active. Command handlers use this
// for lookups that precede the write transaction, then re-check state-changing
// conditions inside it.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Unique indexes back invariants that transactions alone cannot
package postgres

import (
	"context"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
// Each instance maintains its own transaction state, ensuring proper isolation
// between concurrent operations.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Implements the Unit of Work pattern using GORM's transaction capabilities
// to ensure data consistency and proper rollback handling.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ShipmentRepository provides access to shipment persistence operations within
// the unit of work. Operations execute within the current transaction if one
// is active, otherwise on the main database connection.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

// ShipmentItemRepository provides access to demand line persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) ShipmentItemRepository() ports.ShipmentItemRepository {
	return shipmentrepo.NewGormShipmentItemRepository(uow.conn())
}

// PackedItemRepository provides access to packed unit persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) PackedItemRepository() ports.PackedItemRepository {
	return shipmentrepo.NewGormPackedItemRepository(uow.conn())
}

// RemovedItemRepository provides access to removal audit persistence operations
// within the unit of work.
func (uow *GormUnitOfWork) RemovedItemRepository() ports.RemovedItemRepository {
	return shipmentrepo.NewGormRemovedItemRepository(uow.conn())
}

// ShortDateProductRepository provides access to short-date flag persistence
// operations within the unit of work.
func (uow *GormUnitOfWork) ShortDateProductRepository() ports.ShortDateProductRepository {
	return shipmentrepo.NewGormShortDateProductRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
