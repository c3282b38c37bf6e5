package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentDetailsQueryIsNotConstructed = errors.New(
	"GetShipmentDetailsQuery must be created via NewGetShipmentDetailsQuery constructor",
)

// GetShipmentDetailsQuery retrieves one shipment with its demand lines,
// packed units, short-date flags and removal audit.
type GetShipmentDetailsQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentDetailsQuery creates a query for one shipment's details.
func NewGetShipmentDetailsQuery(shipmentID kernel.UUID) (GetShipmentDetailsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentDetailsQuery{}, err
	}

	return GetShipmentDetailsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentDetailsQueryIsNotConstructed)
}

// ShipmentID returns the shipment being read.
func (q GetShipmentDetailsQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// PackedItemResponse is one packed unit in the details view.
type PackedItemResponse struct {
	ID                 kernel.UUID `json:"id"`
	UnitNumber         string      `json:"unitNumber"`
	ProductCode        string      `json:"productCode"`
	ProductDescription string      `json:"productDescription,omitempty"`
	AboRh              string      `json:"aboRh,omitempty"`
	ExpirationDate     *time.Time  `json:"expirationDate,omitempty"`
	SecondVerification string      `json:"secondVerification"`
	VisualInspection   string      `json:"visualInspection"`
	IneligibleStatus   string      `json:"ineligibleStatus,omitempty"`
}

// ShortDateProductResponse is one short-date flag in the details view.
type ShortDateProductResponse struct {
	UnitNumber     string     `json:"unitNumber"`
	ProductCode    string     `json:"productCode"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// ShipmentItemResponse is one demand line in the details view.
type ShipmentItemResponse struct {
	ID                kernel.UUID                `json:"id"`
	ProductFamily     string                     `json:"productFamily"`
	BloodType         string                     `json:"bloodType"`
	Quantity          int                        `json:"quantity"`
	Comments          string                     `json:"comments,omitempty"`
	PackedItems       []PackedItemResponse       `json:"packedItems"`
	ShortDateProducts []ShortDateProductResponse `json:"shortDateProducts"`
}

// RemovedItemResponse is one removal audit row in the details view.
type RemovedItemResponse struct {
	UnitNumber          string    `json:"unitNumber"`
	ProductCode         string    `json:"productCode"`
	IneligibleStatus    string    `json:"ineligibleStatus"`
	Reason              string    `json:"reason,omitempty"`
	RemovedByEmployeeID string    `json:"removedByEmployeeId"`
	RemoveDate          time.Time `json:"removeDate"`
}

// GetShipmentDetailsQueryResponse is the full details view of one shipment.
type GetShipmentDetailsQueryResponse struct {
	ID                    kernel.UUID            `json:"id"`
	OrderNumber           int64                  `json:"orderNumber"`
	ExternalID            string                 `json:"externalId,omitempty"`
	Status                string                 `json:"status"`
	Priority              string                 `json:"priority"`
	ShipmentType          string                 `json:"shipmentType"`
	LabelStatus           string                 `json:"labelStatus"`
	LocationCode          string                 `json:"locationCode"`
	ProductCategory       string                 `json:"productCategory,omitempty"`
	QuarantinedProducts   bool                   `json:"quarantinedProducts"`
	Comments              string                 `json:"comments,omitempty"`
	CompletedByEmployeeID string                 `json:"completedByEmployeeId,omitempty"`
	CompleteDate          *time.Time             `json:"completeDate,omitempty"`
	Facility              *ports.Facility        `json:"facility,omitempty"`
	Items                 []ShipmentItemResponse `json:"items"`
	RemovedItems          []RemovedItemResponse  `json:"removedItems"`
}
