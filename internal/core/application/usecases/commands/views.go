package commands

import (
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
)

// View types carried inside rule outcomes. They are the serialization shape
// of the operator screens, built from aggregates after a command commits.

// PackedItemView is one packed unit as shown on the packing screen.
type PackedItemView struct {
	ID                 string     `json:"id"`
	ShipmentItemID     string     `json:"shipmentItemId"`
	UnitNumber         string     `json:"unitNumber"`
	ProductCode        string     `json:"productCode"`
	ProductDescription string     `json:"productDescription,omitempty"`
	ProductFamily      string     `json:"productFamily,omitempty"`
	AboRh              string     `json:"aboRh,omitempty"`
	ExpirationDate     *time.Time `json:"expirationDate,omitempty"`
	SecondVerification string     `json:"secondVerification"`
	VisualInspection   string     `json:"visualInspection"`
	IneligibleStatus   string     `json:"ineligibleStatus,omitempty"`
}

func newPackedItemView(p *shipment.PackedItem) PackedItemView {
	view := PackedItemView{
		ID:                 p.ID().String(),
		ShipmentItemID:     p.ShipmentItemID().String(),
		UnitNumber:         p.UnitNumber(),
		ProductCode:        p.ProductCode(),
		ProductDescription: p.ProductDescription(),
		ProductFamily:      p.ProductFamily(),
		AboRh:              p.AboRh(),
		ExpirationDate:     p.ExpirationDate(),
		SecondVerification: p.SecondVerification().String(),
		VisualInspection:   p.VisualInspection().String(),
	}
	if detail := p.Ineligible(); detail != nil {
		view.IneligibleStatus = string(detail.Status)
	}

	return view
}

func newPackedItemViews(items []*shipment.PackedItem) []PackedItemView {
	views := make([]PackedItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newPackedItemView(item))
	}

	return views
}

// ShortDateProductView is one short-date flag as shown on the packing screen.
type ShortDateProductView struct {
	UnitNumber     string     `json:"unitNumber"`
	ProductCode    string     `json:"productCode"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

func newShortDateProductViews(products []*shipment.ShortDateProduct) []ShortDateProductView {
	views := make([]ShortDateProductView, 0, len(products))
	for _, product := range products {
		views = append(views, ShortDateProductView{
			UnitNumber:     product.UnitNumber(),
			ProductCode:    product.ProductCode(),
			ExpirationDate: product.ExpirationDate(),
		})
	}

	return views
}

// ShipmentItemView is one demand line with its packed units and short-date
// flags, the payload of pack and unpack outcomes.
type ShipmentItemView struct {
	ID                string                 `json:"id"`
	ShipmentID        string                 `json:"shipmentId"`
	ProductFamily     string                 `json:"productFamily"`
	BloodType         string                 `json:"bloodType"`
	Quantity          int                    `json:"quantity"`
	Comments          string                 `json:"comments,omitempty"`
	PackedItems       []PackedItemView       `json:"packedItems"`
	ShortDateProducts []ShortDateProductView `json:"shortDateProducts"`
}

func newShipmentItemView(
	item *shipment.ShipmentItem,
	packed []*shipment.PackedItem,
	shortDates []*shipment.ShortDateProduct,
) ShipmentItemView {
	return ShipmentItemView{
		ID:                item.ID().String(),
		ShipmentID:        item.ShipmentID().String(),
		ProductFamily:     item.ProductFamily(),
		BloodType:         string(item.BloodType()),
		Quantity:          item.Quantity(),
		Comments:          item.Comments(),
		PackedItems:       newPackedItemViews(packed),
		ShortDateProducts: newShortDateProductViews(shortDates),
	}
}

// VerifyProductsView splits a shipment's packed units into the set still
// awaiting the second scan and the set already verified.
type VerifyProductsView struct {
	ShipmentID    string           `json:"shipmentId"`
	PackedItems   []PackedItemView `json:"packedItems"`
	VerifiedItems []PackedItemView `json:"verifiedItems"`
}

func newVerifyProductsView(shipmentID string, all []*shipment.PackedItem) VerifyProductsView {
	view := VerifyProductsView{
		ShipmentID:    shipmentID,
		PackedItems:   make([]PackedItemView, 0, len(all)),
		VerifiedItems: make([]PackedItemView, 0),
	}
	for _, item := range all {
		if item.IsVerified() {
			view.VerifiedItems = append(view.VerifiedItems, newPackedItemView(item))
			continue
		}
		view.PackedItems = append(view.PackedItems, newPackedItemView(item))
	}

	return view
}

// RemovedUnitView is one removal audit row.
type RemovedUnitView struct {
	UnitNumber          string    `json:"unitNumber"`
	ProductCode         string    `json:"productCode"`
	IneligibleStatus    string    `json:"ineligibleStatus"`
	Action              string    `json:"action,omitempty"`
	Reason              string    `json:"reason,omitempty"`
	Message             string    `json:"message,omitempty"`
	RemovedByEmployeeID string    `json:"removedByEmployeeId"`
	RemoveDate          time.Time `json:"removeDate"`
}

func newRemovedUnitView(r *shipment.RemovedItem) RemovedUnitView {
	return RemovedUnitView{
		UnitNumber:          r.UnitNumber(),
		ProductCode:         r.ProductCode(),
		IneligibleStatus:    string(r.IneligibleStatus()),
		Action:              r.Action(),
		Reason:              r.Reason(),
		Message:             r.Message(),
		RemovedByEmployeeID: r.RemovedByEmployeeID(),
		RemoveDate:          r.RemoveDate(),
	}
}

// RemoveProductsView is the payload of removal outcomes: the audit of units
// already removed plus the ineligible units still waiting to be pulled.
type RemoveProductsView struct {
	ShipmentID       string            `json:"shipmentId"`
	RemovedItems     []RemovedUnitView `json:"removedItems"`
	TobeRemovedItems []PackedItemView  `json:"tobeRemovedItems"`
}

func newRemoveProductsView(
	shipmentID string,
	removed []*shipment.RemovedItem,
	toBeRemoved []*shipment.PackedItem,
) RemoveProductsView {
	view := RemoveProductsView{
		ShipmentID:       shipmentID,
		RemovedItems:     make([]RemovedUnitView, 0, len(removed)),
		TobeRemovedItems: newPackedItemViews(toBeRemoved),
	}
	for _, r := range removed {
		view.RemovedItems = append(view.RemovedItems, newRemovedUnitView(r))
	}

	return view
}

// ShipmentView is the completed-shipment payload with the delivering facility
// resolved from master data.
type ShipmentView struct {
	ID                    string          `json:"id"`
	OrderNumber           int64           `json:"orderNumber"`
	ExternalID            string          `json:"externalId,omitempty"`
	Status                string          `json:"status"`
	Priority              string          `json:"priority"`
	ShipmentType          string          `json:"shipmentType"`
	LabelStatus           string          `json:"labelStatus"`
	LocationCode          string          `json:"locationCode"`
	ProductCategory       string          `json:"productCategory,omitempty"`
	QuarantinedProducts   bool            `json:"quarantinedProducts"`
	Comments              string          `json:"comments,omitempty"`
	CompletedByEmployeeID string          `json:"completedByEmployeeId,omitempty"`
	CompleteDate          *time.Time      `json:"completeDate,omitempty"`
	Facility              *ports.Facility `json:"facility,omitempty"`
}

func newShipmentView(s *shipment.Shipment, facility *ports.Facility) ShipmentView {
	return ShipmentView{
		ID:                    s.ID().String(),
		OrderNumber:           s.OrderNumber(),
		ExternalID:            s.ExternalID(),
		Status:                s.Status().String(),
		Priority:              s.Priority().String(),
		ShipmentType:          s.ShipmentType(),
		LabelStatus:           s.LabelStatus(),
		LocationCode:          s.LocationCode(),
		ProductCategory:       s.ProductCategory(),
		QuarantinedProducts:   s.QuarantinedProducts(),
		Comments:              s.Comments(),
		CompletedByEmployeeID: s.CompletedByEmployeeID(),
		CompleteDate:          s.CompleteDate(),
		Facility:              facility,
	}
}

// UnitValidationView is one failed revalidation reported while completing a
// shipment.
type UnitValidationView struct {
	UnitNumber    string                        `json:"unitNumber"`
	ProductCode   string                        `json:"productCode"`
	Notifications []ports.InventoryNotification `json:"notifications"`
}
