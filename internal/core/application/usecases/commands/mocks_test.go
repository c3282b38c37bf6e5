package commands_test

import (
	"context"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByItemID(ctx context.Context, itemID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllOpen(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockShipmentItemRepository struct{ mock.Mock }

func (m *MockShipmentItemRepository) Add(ctx context.Context, item *shipment.ShipmentItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockShipmentItemRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.ShipmentItem), args.Error(1)
}

func (m *MockShipmentItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.ShipmentItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.ShipmentItem), args.Error(1)
}

type MockPackedItemRepository struct{ mock.Mock }

func (m *MockPackedItemRepository) Add(ctx context.Context, item *shipment.PackedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPackedItemRepository) Update(ctx context.Context, item *shipment.PackedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPackedItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPackedItemRepository) GetByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (*shipment.PackedItem, error) {
	args := m.Called(ctx, shipmentID, unitNumber, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) GetIneligibleByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (*shipment.PackedItem, error) {
	args := m.Called(ctx, shipmentID, unitNumber, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) GetAllByItemID(
	ctx context.Context,
	itemID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) GetAllVerifiedByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) GetAllIneligibleByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.PackedItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.PackedItem), args.Error(1)
}

func (m *MockPackedItemRepository) CountByItemID(ctx context.Context, itemID kernel.UUID) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackedItemRepository) CountByShipmentAndUnit(
	ctx context.Context,
	shipmentID kernel.UUID,
	unitNumber, productCode string,
) (int64, error) {
	args := m.Called(ctx, shipmentID, unitNumber, productCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackedItemRepository) CountPendingVerificationByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackedItemRepository) CountIneligibleByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) (int64, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRemovedItemRepository struct{ mock.Mock }

func (m *MockRemovedItemRepository) Add(ctx context.Context, item *shipment.RemovedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRemovedItemRepository) GetAllByShipmentID(
	ctx context.Context,
	shipmentID kernel.UUID,
) ([]*shipment.RemovedItem, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.RemovedItem), args.Error(1)
}

type MockShortDateProductRepository struct{ mock.Mock }

func (m *MockShortDateProductRepository) Add(ctx context.Context, product *shipment.ShortDateProduct) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockShortDateProductRepository) GetAllByItemID(
	ctx context.Context,
	itemID kernel.UUID,
) ([]*shipment.ShortDateProduct, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.ShortDateProduct), args.Error(1)
}

// MockUoW satisfies every unit of work group used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) ShipmentItemRepository() ports.ShipmentItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentItemRepository)
}

func (m *MockUoW) PackedItemRepository() ports.PackedItemRepository {
	args := m.Called()
	return args.Get(0).(ports.PackedItemRepository)
}

func (m *MockUoW) RemovedItemRepository() ports.RemovedItemRepository {
	args := m.Called()
	return args.Get(0).(ports.RemovedItemRepository)
}

func (m *MockUoW) ShortDateProductRepository() ports.ShortDateProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ShortDateProductRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockPackingUoWFactory struct{ mock.Mock }

func (m *MockPackingUoWFactory) Create() commands.PackingUoW {
	args := m.Called()
	return args.Get(0).(commands.PackingUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInventoryGateway struct{ mock.Mock }

func (m *MockInventoryGateway) Validate(
	ctx context.Context,
	unitNumber, productCode, locationCode string,
) (ports.InventoryValidation, error) {
	args := m.Called(ctx, unitNumber, productCode, locationCode)
	return args.Get(0).(ports.InventoryValidation), args.Error(1)
}

type MockConfigGateway struct{ mock.Mock }

func (m *MockConfigGateway) VisualInspectionActive(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfigGateway) SecondVerificationActive(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfigGateway) CheckDigitActive(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfigGateway) VisualInspectionDiscardReasons(ctx context.Context) ([]ports.DiscardReason, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.DiscardReason), args.Error(1)
}

type MockFacilityGateway struct{ mock.Mock }

func (m *MockFacilityGateway) GetFacility(ctx context.Context, locationCode string) (ports.Facility, error) {
	args := m.Called(ctx, locationCode)
	return args.Get(0).(ports.Facility), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishShipmentCreated(ctx context.Context, event shipment.CreatedEvent) {
	m.Called(ctx, event)
}

func (m *MockEventPublisher) PublishShipmentCompleted(ctx context.Context, event shipment.CompletedEvent) {
	m.Called(ctx, event)
}
