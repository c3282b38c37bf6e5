package commands_test

import (
	"testing"

	"shipping/internal/core/application/messages"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newOpenShipmentFixture(t)
	item := newShipmentItemFixture(t, aggregate.ID())
	verified := newPackedItemFixture(t, item.ID())
	require.NoError(t, verified.Verify("emp-2"))
	cmd, _ := commands.NewCompleteShipmentCommand(aggregate.ID(), testEmployeeID)

	shipRepo := new(MockShipmentRepository)
	shipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
	shipRepo.On("Update", ctx, aggregate).Return(nil)

	packedRepo := new(MockPackedItemRepository)
	packedRepo.On("CountPendingVerificationByShipmentID", ctx, aggregate.ID()).Return(int64(0), nil)
	packedRepo.On("GetAllVerifiedByShipmentID", ctx, aggregate.ID()).
		Return([]*shipment.PackedItem{verified}, nil)

	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipRepo)
	uow.On("PackedItemRepository").Return(packedRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow)

	inventory := new(MockInventoryGateway)
	inventory.On("Validate", ctx, testUnitNumber, testProductCode, aggregate.LocationCode()).
		Return(cleanInventoryValidation(), nil)

	config := new(MockConfigGateway)
	config.On("SecondVerificationActive", ctx).Return(true, nil)

	facility := new(MockFacilityGateway)
	facility.On("GetFacility", ctx, aggregate.LocationCode()).
		Return(ports.Facility{Code: "LOC-1", Name: "Main Distribution Center"}, nil)

	publisher := new(MockEventPublisher)
	publisher.On("PublishShipmentCompleted", ctx, mock.AnythingOfType("shipment.CompletedEvent")).Return()

	h := commands.NewCompleteShipmentCommandHandler(factory, inventory, config, facility, publisher)
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
	assert.True(t, aggregate.IsCompleted())
	assert.Equal(t, testEmployeeID, aggregate.CompletedByEmployeeID())
	assert.Equal(t, "/shipment/"+aggregate.ID().String()+"/shipment-details", outcome.Links["next"])

	require.Len(t, outcome.Results["results"], 1)
	view, ok := outcome.Results["results"][0].(commands.ShipmentView)
	require.True(t, ok)
	assert.Equal(t, "COMPLETED", view.Status)
	require.NotNil(t, view.Facility)
	assert.Equal(t, "Main Distribution Center", view.Facility.Name)
	publisher.AssertExpectations(t)
	shipRepo.AssertExpectations(t)
}

func TestCompleteShipmentCommandHandler_Handle_VerificationNotCompleted(t *testing.T) {
	ctx := t.Context()
	aggregate := newOpenShipmentFixture(t)
	cmd, _ := commands.NewCompleteShipmentCommand(aggregate.ID(), testEmployeeID)

	shipRepo := new(MockShipmentRepository)
	shipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	packedRepo := new(MockPackedItemRepository)
	packedRepo.On("CountPendingVerificationByShipmentID", ctx, aggregate.ID()).Return(int64(3), nil)

	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipRepo)
	uow.On("PackedItemRepository").Return(packedRepo)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow)

	config := new(MockConfigGateway)
	config.On("SecondVerificationActive", ctx).Return(true, nil)

	h := commands.NewCompleteShipmentCommandHandler(factory, new(MockInventoryGateway), config,
		new(MockFacilityGateway), new(MockEventPublisher))
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, outcome.IsSuccess())
	require.Len(t, outcome.Notifications, 1)
	assert.Equal(t, messages.NameVerificationNotCompleted, outcome.Notifications[0].Name)
	assert.Equal(t, "/shipment/"+aggregate.ID().String()+"/verify-products", outcome.Links["next"])
}

func TestCompleteShipmentCommandHandler_Handle_RevalidationFailure(t *testing.T) {
	ctx := t.Context()
	aggregate := newOpenShipmentFixture(t)
	item := newShipmentItemFixture(t, aggregate.ID())
	verified := newPackedItemFixture(t, item.ID())
	require.NoError(t, verified.Verify("emp-2"))
	cmd, _ := commands.NewCompleteShipmentCommand(aggregate.ID(), testEmployeeID)

	shipRepo := new(MockShipmentRepository)
	shipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	packedRepo := new(MockPackedItemRepository)
	packedRepo.On("CountPendingVerificationByShipmentID", ctx, aggregate.ID()).Return(int64(0), nil)
	packedRepo.On("GetAllVerifiedByShipmentID", ctx, aggregate.ID()).
		Return([]*shipment.PackedItem{verified}, nil)
	packedRepo.On("Update", ctx, verified).Return(nil)

	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipRepo)
	uow.On("PackedItemRepository").Return(packedRepo)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow)

	failedValidation := ports.InventoryValidation{
		Record: cleanInventoryValidation().Record,
		Notifications: []ports.InventoryNotification{{
			ErrorName: "INVENTORY_IS_EXPIRED",
			ErrorType: "WARN",
			Message:   "The product has expired.",
			Action:    "Remove the product",
		}},
	}

	inventory := new(MockInventoryGateway)
	inventory.On("Validate", ctx, testUnitNumber, testProductCode, aggregate.LocationCode()).
		Return(failedValidation, nil)

	config := new(MockConfigGateway)
	config.On("SecondVerificationActive", ctx).Return(true, nil)

	h := commands.NewCompleteShipmentCommandHandler(factory, inventory, config,
		new(MockFacilityGateway), new(MockEventPublisher))
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, outcome.IsSuccess())
	require.Len(t, outcome.Notifications, 1)
	assert.Equal(t, messages.NameShipmentValidationFailed, outcome.Notifications[0].Name)
	require.Len(t, outcome.Results["validations"], 1)
	assert.True(t, verified.IsIneligible())
	assert.False(t, aggregate.IsCompleted())
	packedRepo.AssertExpectations(t)
}

func TestCompleteShipmentCommandHandler_Handle_InventoryServiceDown(t *testing.T) {
	ctx := t.Context()
	aggregate := newOpenShipmentFixture(t)
	item := newShipmentItemFixture(t, aggregate.ID())
	verified := newPackedItemFixture(t, item.ID())
	require.NoError(t, verified.Verify("emp-2"))
	cmd, _ := commands.NewCompleteShipmentCommand(aggregate.ID(), testEmployeeID)

	shipRepo := new(MockShipmentRepository)
	shipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	packedRepo := new(MockPackedItemRepository)
	packedRepo.On("CountPendingVerificationByShipmentID", ctx, aggregate.ID()).Return(int64(0), nil)
	packedRepo.On("GetAllVerifiedByShipmentID", ctx, aggregate.ID()).
		Return([]*shipment.PackedItem{verified}, nil)

	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipRepo)
	uow.On("PackedItemRepository").Return(packedRepo)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow)

	inventory := new(MockInventoryGateway)
	inventory.On("Validate", ctx, testUnitNumber, testProductCode, aggregate.LocationCode()).
		Return(ports.InventoryValidation{}, ports.ErrInventoryServiceUnavailable)

	config := new(MockConfigGateway)
	config.On("SecondVerificationActive", ctx).Return(true, nil)

	h := commands.NewCompleteShipmentCommandHandler(factory, inventory, config,
		new(MockFacilityGateway), new(MockEventPublisher))
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, outcome.IsSuccess())
	require.Len(t, outcome.Notifications, 1)
	assert.Equal(t, messages.NameInventoryServiceIsDown, outcome.Notifications[0].Name)
	assert.Equal(t, "/shipment/"+aggregate.ID().String()+"/verify-products", outcome.Links["next"])
}

func TestCompleteShipmentCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	aggregate := newCompletedShipmentFixture(t)
	cmd, _ := commands.NewCompleteShipmentCommand(aggregate.ID(), testEmployeeID)

	shipRepo := new(MockShipmentRepository)
	shipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipRepo)

	factory := new(MockPackingUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCompleteShipmentCommandHandler(factory, new(MockInventoryGateway),
		new(MockConfigGateway), new(MockFacilityGateway), new(MockEventPublisher))
	outcome, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, outcome.IsSuccess())
	require.Len(t, outcome.Notifications, 1)
	assert.Equal(t, messages.NameShipmentCompleted, outcome.Notifications[0].Name)
}
