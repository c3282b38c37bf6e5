package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.PackedItemDTO{},
		&shipmentrepo.RemovedItemDTO{},
		&shipmentrepo.ShortDateProductDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, shipment_items, packed_items, removed_items, short_date_products",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow1.PackedItemRepository(), "First instance should provide packed item repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
	suite.NotNil(uow2.PackedItemRepository(), "Second instance should provide packed item repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	testItem := createTestItem(testShipment.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.ShipmentItemRepository().Add(ctx, testItem)
	suite.Require().NoError(err)

	err = uow.PackedItemRepository().Add(ctx, createTestPackedItem(testItem.ID()))
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the whole graph persisted
	newUow := suite.factory.Create()

	retrieved, err := newUow.ShipmentRepository().GetByItemID(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	count, err := newUow.PackedItemRepository().CountByItemID(ctx, testItem.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()
	testItem := createTestItem(testShipment.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.ShipmentItemRepository().Add(ctx, testItem)
	suite.Require().NoError(err)

	// Visible within the transaction
	_, err = uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Nothing persisted after rollback
	newUow := suite.factory.Create()

	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	_, err = newUow.ShipmentItemRepository().Get(ctx, testItem.ID())
	suite.Require().Error(err, "Item should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := createTestShipment()
	shipment2 := createTestShipment()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ShipmentRepository().Add(ctx, shipment1)
	suite.Require().NoError(err)

	err = uow2.ShipmentRepository().Add(ctx, shipment2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().NoError(err, "UOW2 should see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().Error(err, "UOW2 should not see shipment1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Only the committed shipment persisted
	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.ID())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.ID())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries. Command handlers rely on this for
// lookups that precede Begin.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := createTestShipment()

	err := uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
}

// TestUnitOfWork_PackAndCompleteWorkflow tests the packing and completion
// workflow involving multiple aggregates within transaction boundaries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PackAndCompleteWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Create shipment and demand line
	testShipment := createTestShipment()
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	testItem := createTestItem(testShipment.ID())
	err = uow.ShipmentItemRepository().Add(ctx, testItem)
	suite.Require().NoError(err)

	// Step 2: Pack a unit against the demand line
	packedUnit := createTestPackedItem(testItem.ID())
	err = uow.PackedItemRepository().Add(ctx, packedUnit)
	suite.Require().NoError(err)

	// Step 3: Verify the unit (domain operation)
	err = packedUnit.Verify("emp-2")
	suite.Require().NoError(err)
	err = uow.PackedItemRepository().Update(ctx, packedUnit)
	suite.Require().NoError(err)

	// Step 4: Complete the shipment (domain operation)
	err = testShipment.Complete("emp-2", time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Update(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state
	newUow := suite.factory.Create()

	retrieved, err := newUow.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsCompleted())
	suite.Equal("emp-2", retrieved.CompletedByEmployeeID())

	pending, err := newUow.PackedItemRepository().CountPendingVerificationByShipmentID(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), pending)
}

// createTestShipment creates a valid open shipment for testing purposes.
func createTestShipment() *shipment.Shipment {
	aggregate, _ := shipment.NewShipment(
		kernel.NewUUID(), 1001, "ORD-1001", shipment.PriorityRoutine,
		shipment.ShipmentTypeCustomer, shipment.LabelStatusLabeled,
		"LOC-1", "REFRIGERATED", false, "")
	return aggregate
}

// createTestItem creates a valid demand line for testing purposes.
func createTestItem(shipmentID kernel.UUID) *shipment.ShipmentItem {
	item, _ := shipment.NewShipmentItem(
		kernel.NewUUID(), shipmentID, "RED_BLOOD_CELLS", shipment.BloodTypeOP, 2, "")
	return item
}

// createTestPackedItem creates a valid packed unit for testing purposes.
func createTestPackedItem(itemID kernel.UUID) *shipment.PackedItem {
	packedUnit, _ := shipment.NewPackedItem(shipment.NewPackedItemParams{
		ID:                 kernel.NewUUID(),
		ShipmentItemID:     itemID,
		UnitNumber:         "W123456789012",
		ProductCode:        "E0382",
		ProductFamily:      "RED_BLOOD_CELLS",
		BloodType:          shipment.BloodTypeOP,
		AboRh:              "OP",
		ProductStatus:      "AVAILABLE",
		PackedByEmployeeID: "emp-1",
		VisualInspection:   shipment.VisualInspectionSatisfactory,
		SecondVerification: shipment.SecondVerificationPending,
	})
	return packedUnit
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
