package queries

import (
	"context"
	"database/sql"
	"fmt"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves the shipment worklist from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for worklist queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the worklist query. STAT shipments sort first, then ASAP,
// then routine, newest first within each band.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			order_number,
			external_id,
			status,
			priority,
			shipment_type,
			location_code,
			created_at,
			complete_date
		FROM shipments
		%s
		ORDER BY
			CASE priority WHEN 'STAT' THEN 0 WHEN 'ASAP' THEN 1 ELSE 2 END,
			created_at DESC
	`

	var (
		rows *sql.Rows
		err  error
	)
	if query.Status() != "" {
		rows, err = h.db.WithContext(ctx).
			Raw(fmt.Sprintf(baseQuery, "WHERE status = ?"), query.Status()).Rows()
	} else {
		rows, err = h.db.WithContext(ctx).Raw(fmt.Sprintf(baseQuery, "")).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)

	for rows.Next() {
		var resp GetShipmentsQueryResponse
		var id uuid.UUID
		var externalID sql.NullString
		var completeDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&externalID,
			&resp.Status,
			&resp.Priority,
			&resp.ShipmentType,
			&resp.LocationCode,
			&resp.CreatedAt,
			&completeDate,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.ExternalID = externalID.String
		if completeDate.Valid {
			resp.CompleteDate = &completeDate.Time
		}

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
