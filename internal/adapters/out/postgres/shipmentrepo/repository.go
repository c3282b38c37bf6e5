package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromShipmentDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing shipment to the database. All columns are written
// so cleared fields are persisted too.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromShipmentDomain(aggregate)
	result := r.db.WithContext(ctx).Omit("created_at").Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toShipmentDomain(dto)
}

// GetByItemID retrieves the shipment owning the given demand line.
func (r *GormShipmentRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*shipment.Shipment, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item ShipmentItemDTO
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentItem", itemID.String())
		}
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", item.ShipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", item.ShipmentID.String())
		}
		return nil, err
	}

	return toShipmentDomain(dto)
}

// GetAllOpen retrieves every shipment still in Open status.
func (r *GormShipmentRepository) GetAllOpen(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", shipment.StatusOpen.String()).Error; err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toShipmentDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

// GormShipmentItemRepository implements ShipmentItemRepository using GORM.
type GormShipmentItemRepository struct {
	db *gorm.DB
}

// NewGormShipmentItemRepository creates a new GORM demand line repository.
func NewGormShipmentItemRepository(db *gorm.DB) *GormShipmentItemRepository {
	return &GormShipmentItemRepository{db: db}
}

// Add saves a new demand line to the database.
func (r *GormShipmentItemRepository) Add(ctx context.Context, item *shipment.ShipmentItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromItemDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a demand line by ID.
func (r *GormShipmentItemRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentItem", id.String())
		}
		return nil, err
	}

	return toItemDomain(dto)
}

// GetAllByShipmentID retrieves all demand lines of a shipment.
func (r *GormShipmentItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.ShipmentItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*shipment.ShipmentItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toItemDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GormPackedItemRepository implements PackedItemRepository using GORM.
// The unique index on (shipment_id, unit_number, product_code) enforces the
// product-already-used invariant at write time.
type GormPackedItemRepository struct {
	db *gorm.DB
}

// NewGormPackedItemRepository creates a new GORM packed unit repository.
func NewGormPackedItemRepository(db *gorm.DB) *GormPackedItemRepository {
	return &GormPackedItemRepository{db: db}
}

// Add saves a freshly packed unit, resolving the denormalized shipment
// identifier from the owning demand line. Returns ports.ErrDuplicatePackedUnit
// when the unique index rejects the scanned pair.
func (r *GormPackedItemRepository) Add(ctx context.Context, item *shipment.PackedItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	var owner ShipmentItemDTO
	if err := r.db.WithContext(ctx).First(&owner, "id = ?", item.ShipmentItemID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("shipmentItem", item.ShipmentItemID().String())
		}
		return err
	}

	dto := fromPackedDomain(item, owner.ShipmentID)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicatePackedUnit
		}
		return err
	}

	return nil
}

// Update saves an existing packed unit. All columns are written so a cleared
// verification or ineligible detail is persisted too.
func (r *GormPackedItemRepository) Update(ctx context.Context, item *shipment.PackedItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	var current PackedItemDTO
	if err := r.db.WithContext(ctx).First(&current, "id = ?", item.ID().Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("packedItem", item.ID().String())
		}
		return err
	}

	dto := fromPackedDomain(item, current.ShipmentID)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Delete removes a packed unit record entirely.
func (r *GormPackedItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PackedItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("packedItem", id.String())
	}

	return nil
}

// GetByShipmentAndUnit finds the packed unit matching the scanned pair.
func (r *GormPackedItemRepository) GetByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (*shipment.PackedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto PackedItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND unit_number = ? AND product_code = ?",
			shipmentID.Bytes(), unitNumber, productCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packedItem", unitNumber+"/"+productCode)
		}
		return nil, err
	}

	return toPackedDomain(dto)
}

// GetIneligibleByShipmentAndUnit finds a flagged packed unit matching the
// scanned pair.
func (r *GormPackedItemRepository) GetIneligibleByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (*shipment.PackedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto PackedItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "shipment_id = ? AND unit_number = ? AND product_code = ? AND ineligible_status IS NOT NULL",
			shipmentID.Bytes(), unitNumber, productCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packedItem", unitNumber+"/"+productCode)
		}
		return nil, err
	}

	return toPackedDomain(dto)
}

// GetAllByItemID retrieves the packed units of one demand line.
func (r *GormPackedItemRepository) GetAllByItemID(
	ctx context.Context,
	itemID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "shipment_item_id = ?", itemID.Bytes())
}

// GetAllByShipmentID retrieves every packed unit of a shipment.
func (r *GormPackedItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "shipment_id = ?", shipmentID.Bytes())
}

// GetAllVerifiedByShipmentID retrieves the units whose second verification is
// completed.
func (r *GormPackedItemRepository) GetAllVerifiedByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "shipment_id = ? AND second_verification = ?",
		shipmentID.Bytes(), shipment.SecondVerificationCompleted.String())
}

// GetAllIneligibleByShipmentID retrieves the to-be-removed set.
func (r *GormPackedItemRepository) GetAllIneligibleByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "shipment_id = ? AND ineligible_status IS NOT NULL", shipmentID.Bytes())
}

// CountByItemID counts packed units of one demand line.
func (r *GormPackedItemRepository) CountByItemID(ctx context.Context, itemID kernel.UUID) (int64, error) {
	if err := itemID.Validate(); err != nil {
		return 0, err
	}

	return r.count(ctx, "shipment_item_id = ?", itemID.Bytes())
}

// CountByShipmentAndUnit counts packed units matching the scanned pair across
// the whole shipment.
func (r *GormPackedItemRepository) CountByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (int64, error) {
	if err := shipmentID.Validate(); err != nil {
		return 0, err
	}

	return r.count(ctx, "shipment_id = ? AND unit_number = ? AND product_code = ?",
		shipmentID.Bytes(), unitNumber, productCode)
}

// CountPendingVerificationByShipmentID counts units still awaiting their
// second scan.
func (r *GormPackedItemRepository) CountPendingVerificationByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (int64, error) {
	if err := shipmentID.Validate(); err != nil {
		return 0, err
	}

	return r.count(ctx, "shipment_id = ? AND second_verification = ?",
		shipmentID.Bytes(), shipment.SecondVerificationPending.String())
}

// CountIneligibleByShipmentID counts units flagged ineligible and not yet
// removed.
func (r *GormPackedItemRepository) CountIneligibleByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (int64, error) {
	if err := shipmentID.Validate(); err != nil {
		return 0, err
	}

	return r.count(ctx, "shipment_id = ? AND ineligible_status IS NOT NULL", shipmentID.Bytes())
}

func (r *GormPackedItemRepository) findAll(
	ctx context.Context,
	query string,
	args ...any,
) ([]*shipment.PackedItem, error) {
	var dtos []PackedItemDTO
	if err := r.db.WithContext(ctx).Where(query, args...).
		Order("unit_number, product_code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*shipment.PackedItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toPackedDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *GormPackedItemRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PackedItemDTO{}).Where(query, args...).Count(&count).Error
	return count, err
}

// GormRemovedItemRepository implements RemovedItemRepository using GORM.
type GormRemovedItemRepository struct {
	db *gorm.DB
}

// NewGormRemovedItemRepository creates a new GORM removal audit repository.
func NewGormRemovedItemRepository(db *gorm.DB) *GormRemovedItemRepository {
	return &GormRemovedItemRepository{db: db}
}

// Add saves a removal audit row to the database.
func (r *GormRemovedItemRepository) Add(ctx context.Context, item *shipment.RemovedItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromRemovedDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByShipmentID retrieves the removal audit of a shipment, oldest first.
func (r *GormRemovedItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.RemovedItem, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RemovedItemDTO
	if err := r.db.WithContext(ctx).Order("remove_date").
		Find(&dtos, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*shipment.RemovedItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toRemovedDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GormShortDateProductRepository implements ShortDateProductRepository using GORM.
type GormShortDateProductRepository struct {
	db *gorm.DB
}

// NewGormShortDateProductRepository creates a new GORM short-date flag repository.
func NewGormShortDateProductRepository(db *gorm.DB) *GormShortDateProductRepository {
	return &GormShortDateProductRepository{db: db}
}

// Add saves a short-date flag to the database.
func (r *GormShortDateProductRepository) Add(ctx context.Context, product *shipment.ShortDateProduct) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromShortDateDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByItemID retrieves the short-date flags of one demand line.
func (r *GormShortDateProductRepository) GetAllByItemID(
	ctx context.Context,
	itemID kernel.UUID,
) ([]*shipment.ShortDateProduct, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShortDateProductDTO
	if err := r.db.WithContext(ctx).Order("unit_number").
		Find(&dtos, "shipment_item_id = ?", itemID.Bytes()).Error; err != nil {
		return nil, err
	}

	products := make([]*shipment.ShortDateProduct, 0, len(dtos))
	for _, dto := range dtos {
		product, err := toShortDateDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}
