package queries

import (
	"context"
	"database/sql"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentDetailsQueryHandler assembles the details view of one shipment
// from four read queries: header, demand lines, packed units and the removal
// audit. Short-date flags ride along with their demand line, and the shipping
// facility's address is resolved best-effort from the facility service.
type GetShipmentDetailsQueryHandler struct {
	db       *gorm.DB
	facility ports.FacilityGateway
}

// NewGetShipmentDetailsQueryHandler creates a handler for details queries.
func NewGetShipmentDetailsQueryHandler(
	db *gorm.DB,
	facility ports.FacilityGateway,
) GetShipmentDetailsQueryHandler {
	return GetShipmentDetailsQueryHandler{db: db, facility: facility}
}

// Handle executes the details query. Returns errs.ObjectNotFoundError when
// the shipment does not exist.
func (h GetShipmentDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentDetailsQuery,
) (GetShipmentDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	resp, err := h.readHeader(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	items, err := h.readItems(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	packedByItem, err := h.readPackedItems(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	shortDatesByItem, err := h.readShortDateProducts(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	for i := range items {
		itemID := items[i].ID.String()
		items[i].PackedItems = packedByItem[itemID]
		if items[i].PackedItems == nil {
			items[i].PackedItems = make([]PackedItemResponse, 0)
		}
		items[i].ShortDateProducts = shortDatesByItem[itemID]
		if items[i].ShortDateProducts == nil {
			items[i].ShortDateProducts = make([]ShortDateProductResponse, 0)
		}
	}
	resp.Items = items

	resp.RemovedItems, err = h.readRemovedItems(ctx, query.ShipmentID())
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}

	// A facility lookup failure never hides the shipment itself.
	if facility, facilityErr := h.facility.GetFacility(ctx, resp.LocationCode); facilityErr == nil {
		resp.Facility = &facility
	}

	return resp, nil
}

func (h GetShipmentDetailsQueryHandler) readHeader(
	ctx context.Context,
	shipmentID kernel.UUID,
) (GetShipmentDetailsQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			external_id,
			status,
			priority,
			shipment_type,
			label_status,
			location_code,
			product_category,
			quarantined_products,
			comments,
			completed_by_employee_id,
			complete_date
		FROM shipments
		WHERE id = ?
	`, shipmentID.Bytes()).Row()

	var resp GetShipmentDetailsQueryResponse
	var id uuid.UUID
	var externalID, productCategory, comments, completedBy sql.NullString
	var completeDate sql.NullTime

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&externalID,
		&resp.Status,
		&resp.Priority,
		&resp.ShipmentType,
		&resp.LabelStatus,
		&resp.LocationCode,
		&productCategory,
		&resp.QuarantinedProducts,
		&comments,
		&completedBy,
		&completeDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentDetailsQueryResponse{},
				errs.NewObjectNotFoundError("shipmentId", shipmentID.String())
		}
		return GetShipmentDetailsQueryResponse{}, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentDetailsQueryResponse{}, err
	}
	resp.ID = respID
	resp.ExternalID = externalID.String
	resp.ProductCategory = productCategory.String
	resp.Comments = comments.String
	resp.CompletedByEmployeeID = completedBy.String
	if completeDate.Valid {
		resp.CompleteDate = &completeDate.Time
	}

	return resp, nil
}

func (h GetShipmentDetailsQueryHandler) readItems(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]ShipmentItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_family,
			blood_type,
			quantity,
			comments
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY product_family, blood_type
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ShipmentItemResponse, 0)

	for rows.Next() {
		var item ShipmentItemResponse
		var id uuid.UUID
		var comments sql.NullString

		if err = rows.Scan(&id, &item.ProductFamily, &item.BloodType, &item.Quantity, &comments); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Comments = comments.String

		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetShipmentDetailsQueryHandler) readPackedItems(
	ctx context.Context,
	shipmentID kernel.UUID,
) (map[string][]PackedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shipment_item_id,
			unit_number,
			product_code,
			product_description,
			abo_rh,
			expiration_date,
			second_verification,
			visual_inspection,
			ineligible_status
		FROM packed_items
		WHERE shipment_id = ?
		ORDER BY unit_number, product_code
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packedByItem := make(map[string][]PackedItemResponse)

	for rows.Next() {
		var packed PackedItemResponse
		var id, itemID uuid.UUID
		var description, aboRh, ineligibleStatus sql.NullString
		var expirationDate sql.NullTime

		err = rows.Scan(
			&id,
			&itemID,
			&packed.UnitNumber,
			&packed.ProductCode,
			&description,
			&aboRh,
			&expirationDate,
			&packed.SecondVerification,
			&packed.VisualInspection,
			&ineligibleStatus,
		)
		if err != nil {
			return nil, err
		}

		packedID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		packed.ID = packedID
		packed.ProductDescription = description.String
		packed.AboRh = aboRh.String
		packed.IneligibleStatus = ineligibleStatus.String
		if expirationDate.Valid {
			packed.ExpirationDate = &expirationDate.Time
		}

		key := itemID.String()
		packedByItem[key] = append(packedByItem[key], packed)
	}

	return packedByItem, rows.Err()
}

func (h GetShipmentDetailsQueryHandler) readShortDateProducts(
	ctx context.Context,
	shipmentID kernel.UUID,
) (map[string][]ShortDateProductResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.shipment_item_id,
			s.unit_number,
			s.product_code,
			s.expiration_date
		FROM short_date_products s
		JOIN shipment_items i ON i.id = s.shipment_item_id
		WHERE i.shipment_id = ?
		ORDER BY s.unit_number
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shortDatesByItem := make(map[string][]ShortDateProductResponse)

	for rows.Next() {
		var flag ShortDateProductResponse
		var itemID uuid.UUID
		var expirationDate sql.NullTime

		if err = rows.Scan(&itemID, &flag.UnitNumber, &flag.ProductCode, &expirationDate); err != nil {
			return nil, err
		}
		if expirationDate.Valid {
			flag.ExpirationDate = &expirationDate.Time
		}

		key := itemID.String()
		shortDatesByItem[key] = append(shortDatesByItem[key], flag)
	}

	return shortDatesByItem, rows.Err()
}

func (h GetShipmentDetailsQueryHandler) readRemovedItems(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]RemovedItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			unit_number,
			product_code,
			ineligible_status,
			reason,
			removed_by_employee_id,
			remove_date
		FROM removed_items
		WHERE shipment_id = ?
		ORDER BY remove_date
	`, shipmentID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	removed := make([]RemovedItemResponse, 0)

	for rows.Next() {
		var row RemovedItemResponse
		var reason sql.NullString

		err = rows.Scan(
			&row.UnitNumber,
			&row.ProductCode,
			&row.IneligibleStatus,
			&reason,
			&row.RemovedByEmployeeID,
			&row.RemoveDate,
		)
		if err != nil {
			return nil, err
		}
		row.Reason = reason.String

		removed = append(removed, row)
	}

	return removed, rows.Err()
}
