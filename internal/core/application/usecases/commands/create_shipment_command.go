package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOrderNumberIsInvalid = errors.New("order number must be greater than 0")
	ErrLocationCodeIsRequired = errors.New("location code is required")
	ErrShipmentItemsAreRequired = errors.New("at least one shipment item is required")
)

// CreateShipmentItemData is one demand line of a shipment to be created.
type CreateShipmentItemData struct {
	ProductFamily string
	BloodType     string
	Quantity      int
	Comments      string

	ShortDateProducts []CreateShortDateProductData
}

// CreateShortDateProductData flags a unit the order fulfillment picked with a
// close expiration date.
type CreateShortDateProductData struct {
	UnitNumber     string
	ProductCode    string
	ExpirationDate *time.Time
}

// CreateShipmentCommand represents a request to open a new shipment from a
// fulfilled order. Carries the order identity, routing data and demand lines.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID          kernel.UUID
	orderNumber         int64
	externalID          string
	priority            shipment.Priority
	shipmentType        string
	labelStatus         string
	locationCode        string
	productCategory     string
	quarantinedProducts bool
	comments            string
	items               []CreateShipmentItemData

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Validates the shipment ID, order number, location code and demand lines.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderNumber int64,
	externalID string,
	priority string,
	shipmentType string,
	labelStatus string,
	locationCode string,
	productCategory string,
	quarantinedProducts bool,
	comments string,
	items []CreateShipmentItemData,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		externalID:          externalID,
		shipmentType:        shipmentType,
		labelStatus:         labelStatus,
		productCategory:     productCategory,
		quarantinedProducts: quarantinedProducts,
		comments:            comments,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOrderNumber(orderNumber),
		command.setPriority(priority),
		command.setLocationCode(locationCode),
		command.setItems(items),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier assigned to the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OrderNumber returns the fulfilled order's number.
func (c CreateShipmentCommand) OrderNumber() int64 { return c.orderNumber }

// ExternalID returns the order identity in the upstream system.
func (c CreateShipmentCommand) ExternalID() string { return c.externalID }

// Priority returns the requested shipping priority.
func (c CreateShipmentCommand) Priority() shipment.Priority { return c.priority }

// ShipmentType returns the customer or internal-transfer type.
func (c CreateShipmentCommand) ShipmentType() string { return c.shipmentType }

// LabelStatus returns whether the shipment carries labeled or unlabeled units.
func (c CreateShipmentCommand) LabelStatus() string { return c.labelStatus }

// LocationCode returns the shipping location.
func (c CreateShipmentCommand) LocationCode() string { return c.locationCode }

// ProductCategory returns the temperature category of the order.
func (c CreateShipmentCommand) ProductCategory() string { return c.productCategory }

// QuarantinedProducts reports whether the shipment carries quarantined units.
func (c CreateShipmentCommand) QuarantinedProducts() bool { return c.quarantinedProducts }

// Comments returns free-form order comments.
func (c CreateShipmentCommand) Comments() string { return c.comments }

// Items returns the demand lines to create.
func (c CreateShipmentCommand) Items() []CreateShipmentItemData { return c.items }

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return ErrOrderNumberIsInvalid
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateShipmentCommand) setPriority(priority string) error {
	parsed, err := shipment.PriorityFromString(priority)
	if err != nil {
		return err
	}

	c.priority = parsed
	return nil
}

func (c *CreateShipmentCommand) setLocationCode(locationCode string) error {
	if locationCode == "" {
		return ErrLocationCodeIsRequired
	}

	c.locationCode = locationCode
	return nil
}

func (c *CreateShipmentCommand) setItems(items []CreateShipmentItemData) error {
	if len(items) == 0 {
		return ErrShipmentItemsAreRequired
	}

	for _, item := range items {
		if err := shipment.BloodType(item.BloodType).Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
