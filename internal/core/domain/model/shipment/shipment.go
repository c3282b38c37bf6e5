package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ShipmentType distinguishes customer orders from internal transfers between
// blood center locations. Internal transfers relax some inventory rules (see
// AllowedInventoryNotificationTypes).
const (
	ShipmentTypeCustomer         = "CUSTOMER"
	ShipmentTypeInternalTransfer = "INTERNAL_TRANSFER"
)

// LabelStatus values for a shipment. An unlabeled internal transfer may only
// carry unlabeled product.
const (
	LabelStatusLabeled   = "LABELED"
	LabelStatusUnlabeled = "UNLABELED"
)

// Inventory-authority notification types an internal-transfer shipment may
// tolerate during packing, depending on its header.
const (
	NotificationInventoryQuarantined = "INVENTORY_IS_QUARANTINED"
	NotificationInventoryUnlabeled   = "INVENTORY_IS_UNLABELED"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentCompleted is returned by mutating guards once the shipment
	// has reached its terminal status.
	ErrShipmentCompleted = errors.New("shipment is already completed")
)

// Shipment is the aggregate root of the fulfillment workflow. It carries the
// order header received from the order service and the completion metadata
// stamped by the Completion operation.
//
// Invariants:
//   - Must have a valid unique identifier and a positive order number
//   - Status transitions Open -> Completed exactly once, only via Complete
//   - No packing, unpacking, verification, or removal once Completed
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id                    kernel.UUID
	orderNumber           int64
	externalID            string
	status                Status
	priority              Priority
	shipmentType          string
	labelStatus           string
	locationCode          string
	productCategory       string
	quarantinedProducts   bool
	comments              string
	completedByEmployeeID string
	completeDate          *time.Time

	isConstructed bool
}

// NewShipment creates an Open shipment from an order header.
// All creation-time invariants are validated; the shipment starts with no
// completion metadata.
func NewShipment(
	id kernel.UUID,
	orderNumber int64,
	externalID string,
	priority Priority,
	shipmentType string,
	labelStatus string,
	locationCode string,
	productCategory string,
	quarantinedProducts bool,
	comments string,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		validateOrderNumber(orderNumber),
		priority.Validate(),
		validateRequired("locationCode", locationCode),
		validateRequired("productCategory", productCategory),
	); err != nil {
		return nil, err
	}

	if shipmentType == "" {
		shipmentType = ShipmentTypeCustomer
	}
	if labelStatus == "" {
		labelStatus = LabelStatusLabeled
	}

	return &Shipment{
		id:                  id,
		orderNumber:         orderNumber,
		externalID:          externalID,
		status:              StatusOpen,
		priority:            priority,
		shipmentType:        shipmentType,
		labelStatus:         labelStatus,
		locationCode:        locationCode,
		productCategory:     productCategory,
		quarantinedProducts: quarantinedProducts,
		comments:            comments,
		isConstructed:       true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// status and completion metadata. Creation-time rules are not re-applied.
func RestoreShipment(
	id kernel.UUID,
	orderNumber int64,
	externalID string,
	status Status,
	priority Priority,
	shipmentType string,
	labelStatus string,
	locationCode string,
	productCategory string,
	quarantinedProducts bool,
	comments string,
	completedByEmployeeID string,
	completeDate *time.Time,
) (*Shipment, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Shipment{
		id:                    id,
		orderNumber:           orderNumber,
		externalID:            externalID,
		status:                status,
		priority:              priority,
		shipmentType:          shipmentType,
		labelStatus:           labelStatus,
		locationCode:          locationCode,
		productCategory:       productCategory,
		quarantinedProducts:   quarantinedProducts,
		comments:              comments,
		completedByEmployeeID: completedByEmployeeID,
		completeDate:          completeDate,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderNumber returns the originating order number.
func (s *Shipment) OrderNumber() int64 { return s.orderNumber }

// ExternalID returns the external order reference.
func (s *Shipment) ExternalID() string { return s.externalID }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Priority returns the fulfillment urgency.
func (s *Shipment) Priority() Priority { return s.priority }

// ShipmentType returns the shipment type (customer order or internal transfer).
func (s *Shipment) ShipmentType() string { return s.shipmentType }

// LabelStatus returns the shipment's label status.
func (s *Shipment) LabelStatus() string { return s.labelStatus }

// LocationCode returns the distribution location fulfilling the shipment.
func (s *Shipment) LocationCode() string { return s.locationCode }

// ProductCategory returns the temperature category the shipment carries.
func (s *Shipment) ProductCategory() string { return s.productCategory }

// QuarantinedProducts reports whether this shipment intentionally carries
// quarantined product (internal transfers only).
func (s *Shipment) QuarantinedProducts() bool { return s.quarantinedProducts }

// Comments returns the free-form order comments.
func (s *Shipment) Comments() string { return s.comments }

// CompletedByEmployeeID returns the employee who completed the shipment,
// empty while the shipment is open.
func (s *Shipment) CompletedByEmployeeID() string { return s.completedByEmployeeID }

// CompleteDate returns the completion timestamp, nil while the shipment is open.
func (s *Shipment) CompleteDate() *time.Time { return s.completeDate }

// IsCompleted reports whether the shipment has reached its terminal status.
func (s *Shipment) IsCompleted() bool {
	return s.status == StatusCompleted
}

// EnsureOpen returns ErrShipmentCompleted when the shipment can no longer be
// mutated. Every unit-level operation re-checks this at write time, not only
// at read time, so a shipment completed mid-operation is still rejected.
func (s *Shipment) EnsureOpen() error {
	if s.IsCompleted() {
		return ErrShipmentCompleted
	}
	return nil
}

// Complete transitions the shipment to Completed and stamps the completion
// metadata. Completing an already-completed shipment returns an error and
// leaves the aggregate untouched.
func (s *Shipment) Complete(employeeID string, at time.Time) error {
	if employeeID == "" {
		return errs.NewValueIsRequiredError("employeeId")
	}

	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.completedByEmployeeID = employeeID
	s.completeDate = &at
	return nil
}

// IsInternalTransfer reports whether this shipment moves product between
// locations rather than to a customer.
func (s *Shipment) IsInternalTransfer() bool {
	return s.shipmentType == ShipmentTypeInternalTransfer
}

// AllowedInventoryNotificationTypes returns the inventory-authority
// notification types this shipment tolerates during packing. A quarantined
// internal transfer accepts quarantined product; an unlabeled internal
// transfer accepts unlabeled product. Customer shipments tolerate none.
func (s *Shipment) AllowedInventoryNotificationTypes() []string {
	if !s.IsInternalTransfer() {
		return nil
	}

	var allowed []string
	if s.quarantinedProducts {
		allowed = append(allowed, NotificationInventoryQuarantined)
	}
	if s.labelStatus == LabelStatusUnlabeled {
		allowed = append(allowed, NotificationInventoryUnlabeled)
	}
	return allowed
}

func validateOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	return nil
}

func validateRequired(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
