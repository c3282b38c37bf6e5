// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment domain aggregate and its child entities, handling the conversion
// between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status and priority are stored as their string names so the
// read-side queries can filter and sort on them directly.
type ShipmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber           int64     `gorm:"index"`
	ExternalID            string
	Status                string `gorm:"index"`
	Priority              string
	ShipmentType          string
	LabelStatus           string
	LocationCode          string
	ProductCategory       string
	QuarantinedProducts   bool
	Comments              string
	CompletedByEmployeeID string
	CompleteDate          *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents the database structure for persisting demand lines.
type ShipmentItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID    uuid.UUID `gorm:"type:uuid;index"`
	ProductFamily string
	BloodType     string
	Quantity      int
	Comments      string
}

// TableName specifies the database table name for demand line entities.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// PackedItemDTO represents the database structure for persisting packed units.
// ShipmentID is denormalized from the owning demand line so the unique index
// on the scanned pair can span the whole shipment and shipment-scoped reads
// avoid a join. The ineligible columns are null while the unit is eligible.
type PackedItemDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentItemID       uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_packed_items_shipment_unit"`
	UnitNumber           string    `gorm:"uniqueIndex:idx_packed_items_shipment_unit"`
	ProductCode          string    `gorm:"uniqueIndex:idx_packed_items_shipment_unit"`
	ProductDescription   string
	ProductFamily        string
	BloodType            string
	AboRh                string
	ProductStatus        string
	ExpirationDate       *time.Time
	CollectionDate       *time.Time
	PackedByEmployeeID   string
	VisualInspection     string
	SecondVerification   string
	VerifiedByEmployeeID string
	IneligibleStatus     *string
	IneligibleAction     *string
	IneligibleReason     *string
	IneligibleMessage    *string
}

// TableName specifies the database table name for packed unit entities.
func (PackedItemDTO) TableName() string {
	return "packed_items"
}

// RemovedItemDTO represents the database structure for the removal audit.
// Rows are append-only.
type RemovedItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID          uuid.UUID `gorm:"type:uuid;index"`
	ShipmentItemID      uuid.UUID `gorm:"type:uuid"`
	UnitNumber          string
	ProductCode         string
	IneligibleStatus    string
	Action              string
	Reason              string
	Message             string
	RemovedByEmployeeID string
	RemoveDate          time.Time
}

// TableName specifies the database table name for removal audit entities.
func (RemovedItemDTO) TableName() string {
	return "removed_items"
}

// ShortDateProductDTO represents the database structure for short-date flags.
type ShortDateProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentItemID uuid.UUID `gorm:"type:uuid;index"`
	UnitNumber     string
	ProductCode    string
	ExpirationDate *time.Time
}

// TableName specifies the database table name for short-date flag entities.
func (ShortDateProductDTO) TableName() string {
	return "short_date_products"
}

// fromShipmentDomain converts a shipment aggregate to its database representation.
func fromShipmentDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderNumber:           aggregate.OrderNumber(),
		ExternalID:            aggregate.ExternalID(),
		Status:                aggregate.Status().String(),
		Priority:              aggregate.Priority().String(),
		ShipmentType:          aggregate.ShipmentType(),
		LabelStatus:           aggregate.LabelStatus(),
		LocationCode:          aggregate.LocationCode(),
		ProductCategory:       aggregate.ProductCategory(),
		QuarantinedProducts:   aggregate.QuarantinedProducts(),
		Comments:              aggregate.Comments(),
		CompletedByEmployeeID: aggregate.CompletedByEmployeeID(),
		CompleteDate:          aggregate.CompleteDate(),
	}
}

// toShipmentDomain converts a database DTO to a shipment aggregate.
func toShipmentDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.OrderNumber,
		dto.ExternalID,
		status,
		shipment.Priority(dto.Priority),
		dto.ShipmentType,
		dto.LabelStatus,
		dto.LocationCode,
		dto.ProductCategory,
		dto.QuarantinedProducts,
		dto.Comments,
		dto.CompletedByEmployeeID,
		dto.CompleteDate,
	)
}

// fromItemDomain converts a demand line to its database representation.
func fromItemDomain(item *shipment.ShipmentItem) ShipmentItemDTO {
	return ShipmentItemDTO{
		ID:            item.ID().Bytes(),
		ShipmentID:    item.ShipmentID().Bytes(),
		ProductFamily: item.ProductFamily(),
		BloodType:     item.BloodType().String(),
		Quantity:      item.Quantity(),
		Comments:      item.Comments(),
	}
}

// toItemDomain converts a database DTO to a demand line.
func toItemDomain(dto ShipmentItemDTO) (*shipment.ShipmentItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipmentItem(
		id,
		shipmentID,
		dto.ProductFamily,
		shipment.BloodType(dto.BloodType),
		dto.Quantity,
		dto.Comments,
	)
}

// fromPackedDomain converts a packed unit to its database representation.
// The caller supplies the denormalized shipment identifier.
func fromPackedDomain(item *shipment.PackedItem, shipmentID uuid.UUID) PackedItemDTO {
	dto := PackedItemDTO{
		ID:                   item.ID().Bytes(),
		ShipmentItemID:       item.ShipmentItemID().Bytes(),
		ShipmentID:           shipmentID,
		UnitNumber:           item.UnitNumber(),
		ProductCode:          item.ProductCode(),
		ProductDescription:   item.ProductDescription(),
		ProductFamily:        item.ProductFamily(),
		BloodType:            item.BloodType().String(),
		AboRh:                item.AboRh(),
		ProductStatus:        item.ProductStatus(),
		ExpirationDate:       item.ExpirationDate(),
		CollectionDate:       item.CollectionDate(),
		PackedByEmployeeID:   item.PackedByEmployeeID(),
		VisualInspection:     item.VisualInspection().String(),
		SecondVerification:   item.SecondVerification().String(),
		VerifiedByEmployeeID: item.VerifiedByEmployeeID(),
	}

	if detail := item.Ineligible(); detail != nil {
		status := detail.Status.String()
		dto.IneligibleStatus = &status
		dto.IneligibleAction = &detail.Action
		dto.IneligibleReason = &detail.Reason
		dto.IneligibleMessage = &detail.Message
	}

	return dto
}

// toPackedDomain converts a database DTO to a packed unit.
func toPackedDomain(dto PackedItemDTO) (*shipment.PackedItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ShipmentItemID[:])
	if err != nil {
		return nil, err
	}

	inspection, err := shipment.VisualInspectionFromString(dto.VisualInspection)
	if err != nil {
		return nil, err
	}

	verification, err := shipment.SecondVerificationFromString(dto.SecondVerification)
	if err != nil {
		return nil, err
	}

	var ineligible *shipment.IneligibleDetail
	if dto.IneligibleStatus != nil {
		ineligible = &shipment.IneligibleDetail{
			Status:  shipment.IneligibleStatus(*dto.IneligibleStatus),
			Action:  stringOrEmpty(dto.IneligibleAction),
			Reason:  stringOrEmpty(dto.IneligibleReason),
			Message: stringOrEmpty(dto.IneligibleMessage),
		}
	}

	return shipment.RestorePackedItem(shipment.RestorePackedItemParams{
		NewPackedItemParams: shipment.NewPackedItemParams{
			ID:                 id,
			ShipmentItemID:     itemID,
			UnitNumber:         dto.UnitNumber,
			ProductCode:        dto.ProductCode,
			ProductDescription: dto.ProductDescription,
			ProductFamily:      dto.ProductFamily,
			BloodType:          shipment.BloodType(dto.BloodType),
			AboRh:              dto.AboRh,
			ProductStatus:      dto.ProductStatus,
			ExpirationDate:     dto.ExpirationDate,
			CollectionDate:     dto.CollectionDate,
			PackedByEmployeeID: dto.PackedByEmployeeID,
			VisualInspection:   inspection,
			SecondVerification: verification,
		},
		VerifiedByEmployeeID: dto.VerifiedByEmployeeID,
		Ineligible:           ineligible,
	})
}

// fromRemovedDomain converts a removal audit row to its database representation.
func fromRemovedDomain(item *shipment.RemovedItem) RemovedItemDTO {
	return RemovedItemDTO{
		ID:                  item.ID().Bytes(),
		ShipmentID:          item.ShipmentID().Bytes(),
		ShipmentItemID:      item.ShipmentItemID().Bytes(),
		UnitNumber:          item.UnitNumber(),
		ProductCode:         item.ProductCode(),
		IneligibleStatus:    item.IneligibleStatus().String(),
		Action:              item.Action(),
		Reason:              item.Reason(),
		Message:             item.Message(),
		RemovedByEmployeeID: item.RemovedByEmployeeID(),
		RemoveDate:          item.RemoveDate(),
	}
}

// toRemovedDomain converts a database DTO to a removal audit row.
func toRemovedDomain(dto RemovedItemDTO) (*shipment.RemovedItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ShipmentItemID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreRemovedItem(shipment.RestoreRemovedItemParams{
		ID:                  id,
		ShipmentID:          shipmentID,
		ShipmentItemID:      itemID,
		UnitNumber:          dto.UnitNumber,
		ProductCode:         dto.ProductCode,
		IneligibleStatus:    shipment.IneligibleStatus(dto.IneligibleStatus),
		Action:              dto.Action,
		Reason:              dto.Reason,
		Message:             dto.Message,
		RemovedByEmployeeID: dto.RemovedByEmployeeID,
		RemoveDate:          dto.RemoveDate,
	})
}

// fromShortDateDomain converts a short-date flag to its database representation.
func fromShortDateDomain(product *shipment.ShortDateProduct) ShortDateProductDTO {
	return ShortDateProductDTO{
		ID:             product.ID().Bytes(),
		ShipmentItemID: product.ShipmentItemID().Bytes(),
		UnitNumber:     product.UnitNumber(),
		ProductCode:    product.ProductCode(),
		ExpirationDate: product.ExpirationDate(),
	}
}

// toShortDateDomain converts a database DTO to a short-date flag.
func toShortDateDomain(dto ShortDateProductDTO) (*shipment.ShortDateProduct, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ShipmentItemID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShortDateProduct(id, itemID, dto.UnitNumber, dto.ProductCode, dto.ExpirationDate)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
