package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ShipmentRepositoryIntegrationTestSuite provides integration tests for the
// shipment repositories using PostgreSQL containers to verify persistence
// behavior, including the unique index backing the product-already-used rule.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	shipments  *shipmentrepo.GormShipmentRepository
	items      *shipmentrepo.GormShipmentItemRepository
	packed     *shipmentrepo.GormPackedItemRepository
	removed    *shipmentrepo.GormRemovedItemRepository
	shortDates *shipmentrepo.GormShortDateProductRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.PackedItemDTO{},
		&shipmentrepo.RemovedItemDTO{},
		&shipmentrepo.ShortDateProductDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE shipments, shipment_items, packed_items, removed_items, short_date_products",
	).Error)

	suite.shipments = shipmentrepo.NewGormShipmentRepository(suite.db)
	suite.items = shipmentrepo.NewGormShipmentItemRepository(suite.db)
	suite.packed = shipmentrepo.NewGormPackedItemRepository(suite.db)
	suite.removed = shipmentrepo.NewGormRemovedItemRepository(suite.db)
	suite.shortDates = shipmentrepo.NewGormShortDateProductRepository(suite.db)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()

	err := suite.shipments.Add(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.shipments.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal(int64(1001), retrieved.OrderNumber())
	suite.Equal("ORD-1001", retrieved.ExternalID())
	suite.Equal(shipment.StatusOpen, retrieved.Status())
	suite.Equal(shipment.PriorityRoutine, retrieved.Priority())
	suite.Equal("LOC-1", retrieved.LocationCode())
	suite.Equal("REFRIGERATED", retrieved.ProductCategory())
	suite.Empty(retrieved.CompletedByEmployeeID())
	suite.Nil(retrieved.CompleteDate())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.shipments.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_CompletedShipment_PersistsCompletionMetadata() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))

	completedAt := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(aggregate.Complete("emp-9", completedAt))

	err := suite.shipments.Update(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.shipments.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusCompleted, retrieved.Status())
	suite.Equal("emp-9", retrieved.CompletedByEmployeeID())
	suite.Require().NotNil(retrieved.CompleteDate())
	suite.WithinDuration(completedAt, *retrieved.CompleteDate(), time.Second)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsError() {
	ctx := context.Background()

	err := suite.shipments.Update(ctx, suite.createTestShipment())
	suite.Require().Error(err)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByItemID_ReturnsOwningShipment() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	retrieved, err := suite.shipments.GetByItemID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByItemID_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.shipments.GetByItemID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllOpen_ExcludesCompletedShipments() {
	ctx := context.Background()

	open := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, open))

	completed := suite.createTestShipment()
	suite.Require().NoError(completed.Complete("emp-9", time.Now().UTC()))
	suite.Require().NoError(suite.shipments.Add(ctx, completed))

	openShipments, err := suite.shipments.GetAllOpen(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(openShipments, 1)
	suite.Equal(open.ID(), openShipments[0].ID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestItems_AddAndGetAllByShipmentID() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))

	first := suite.createTestItem(ctx, aggregate.ID())
	suite.createTestItem(ctx, aggregate.ID())

	items, err := suite.items.GetAllByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(items, 2)

	retrieved, err := suite.items.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(first.ID(), retrieved.ID())
	suite.Equal("RED_BLOOD_CELLS", retrieved.ProductFamily())
	suite.Equal(shipment.BloodTypeOP, retrieved.BloodType())
	suite.Equal(2, retrieved.Quantity())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedAdd_ResolvesShipmentFromItem() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	packedUnit := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	suite.Require().NoError(suite.packed.Add(ctx, packedUnit))

	retrieved, err := suite.packed.GetByShipmentAndUnit(ctx, aggregate.ID(), "W123456789012", "E0382")
	suite.Require().NoError(err)
	suite.Equal(packedUnit.ID(), retrieved.ID())
	suite.Equal(item.ID(), retrieved.ShipmentItemID())
	suite.Equal(shipment.SecondVerificationPending, retrieved.SecondVerification())
	suite.False(retrieved.IsIneligible())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedAdd_DuplicateUnit_ReturnsDuplicateError() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	first := suite.createTestItem(ctx, aggregate.ID())
	second := suite.createTestItem(ctx, aggregate.ID())

	suite.Require().NoError(suite.packed.Add(ctx, suite.newPackedItem(first.ID(), "W123456789012", "E0382")))

	// Same scanned pair on another demand line of the same shipment
	err := suite.packed.Add(ctx, suite.newPackedItem(second.ID(), "W123456789012", "E0382"))
	suite.Require().ErrorIs(err, ports.ErrDuplicatePackedUnit)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedAdd_NonExistentItem_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.packed.Add(ctx, suite.newPackedItem(kernel.NewUUID(), "W123456789012", "E0382"))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedUpdate_ResetVerification_ClearsVerifier() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	packedUnit := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	suite.Require().NoError(suite.packed.Add(ctx, packedUnit))

	suite.Require().NoError(packedUnit.Verify("emp-2"))
	suite.Require().NoError(suite.packed.Update(ctx, packedUnit))

	verified, err := suite.packed.GetAllVerifiedByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(verified, 1)
	suite.Equal("emp-2", verified[0].VerifiedByEmployeeID())

	packedUnit.ResetVerification()
	suite.Require().NoError(suite.packed.Update(ctx, packedUnit))

	retrieved, err := suite.packed.GetByShipmentAndUnit(ctx, aggregate.ID(), "W123456789012", "E0382")
	suite.Require().NoError(err)
	suite.Equal(shipment.SecondVerificationPending, retrieved.SecondVerification())
	suite.Empty(retrieved.VerifiedByEmployeeID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedIneligible_RoundTripAndFiltering() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	eligible := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	suite.Require().NoError(suite.packed.Add(ctx, eligible))

	flagged := suite.newPackedItem(item.ID(), "W999999999999", "E0382")
	flagged.MarkIneligible(shipment.IneligibleDetail{
		Status:  shipment.IneligibleStatusExpired,
		Action:  "REMOVE",
		Reason:  "PRODUCT_EXPIRED",
		Message: "Product is expired.",
	})
	suite.Require().NoError(suite.packed.Add(ctx, flagged))

	ineligible, err := suite.packed.GetAllIneligibleByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(ineligible, 1)
	suite.Equal(flagged.ID(), ineligible[0].ID())
	suite.Require().NotNil(ineligible[0].Ineligible())
	suite.Equal(shipment.IneligibleStatusExpired, ineligible[0].Ineligible().Status)
	suite.Equal("Product is expired.", ineligible[0].Ineligible().Message)

	count, err := suite.packed.CountIneligibleByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	retrieved, err := suite.packed.GetIneligibleByShipmentAndUnit(ctx, aggregate.ID(), "W999999999999", "E0382")
	suite.Require().NoError(err)
	suite.Equal(flagged.ID(), retrieved.ID())

	// The eligible unit is not part of the to-be-removed set
	_, err = suite.packed.GetIneligibleByShipmentAndUnit(ctx, aggregate.ID(), "W123456789012", "E0382")
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedCounts() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	first := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	suite.Require().NoError(suite.packed.Add(ctx, first))

	second := suite.newPackedItem(item.ID(), "W999999999999", "E0382")
	suite.Require().NoError(second.Verify("emp-2"))
	suite.Require().NoError(suite.packed.Add(ctx, second))

	byItem, err := suite.packed.CountByItemID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(2), byItem)

	byUnit, err := suite.packed.CountByShipmentAndUnit(ctx, aggregate.ID(), "W123456789012", "E0382")
	suite.Require().NoError(err)
	suite.Equal(int64(1), byUnit)

	pending, err := suite.packed.CountPendingVerificationByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(1), pending)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestPackedDelete_RemovesRecord() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	packedUnit := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	suite.Require().NoError(suite.packed.Add(ctx, packedUnit))

	suite.Require().NoError(suite.packed.Delete(ctx, packedUnit.ID()))

	remaining, err := suite.packed.GetAllByItemID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Empty(remaining)

	// Deleting again reports not found
	err = suite.packed.Delete(ctx, packedUnit.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestRemovedItems_AppendAndReadInRemovalOrder() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	flagged := suite.newPackedItem(item.ID(), "W123456789012", "E0382")
	flagged.MarkIneligible(shipment.IneligibleDetail{
		Status: shipment.IneligibleStatusDiscarded,
		Action: "REMOVE",
		Reason: "PRODUCT_DISCARDED",
	})

	auditRow, err := shipment.NewRemovedItemFromPacked(
		kernel.NewUUID(), aggregate.ID(), flagged, "emp-3", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.removed.Add(ctx, auditRow))

	rows, err := suite.removed.GetAllByShipmentID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("W123456789012", rows[0].UnitNumber())
	suite.Equal(shipment.IneligibleStatusDiscarded, rows[0].IneligibleStatus())
	suite.Equal("emp-3", rows[0].RemovedByEmployeeID())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestShortDateProducts_AddAndGetAllByItemID() {
	ctx := context.Background()

	aggregate := suite.createTestShipment()
	suite.Require().NoError(suite.shipments.Add(ctx, aggregate))
	item := suite.createTestItem(ctx, aggregate.ID())

	expiration := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Millisecond)
	flag, err := shipment.NewShortDateProduct(
		kernel.NewUUID(), item.ID(), "W123456789012", "E0382", &expiration)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shortDates.Add(ctx, flag))

	flags, err := suite.shortDates.GetAllByItemID(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Require().Len(flags, 1)
	suite.Equal("W123456789012", flags[0].UnitNumber())
	suite.Require().NotNil(flags[0].ExpirationDate())
	suite.WithinDuration(expiration, *flags[0].ExpirationDate(), time.Second)
}

// createTestShipment creates a basic open shipment with default values.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), 1001, "ORD-1001", shipment.PriorityRoutine,
		shipment.ShipmentTypeCustomer, shipment.LabelStatusLabeled,
		"LOC-1", "REFRIGERATED", false, "")
	suite.Require().NoError(err)
	return aggregate
}

// createTestItem creates and persists a demand line for the given shipment.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestItem(
	ctx context.Context, shipmentID kernel.UUID,
) *shipment.ShipmentItem {
	item, err := shipment.NewShipmentItem(
		kernel.NewUUID(), shipmentID, "RED_BLOOD_CELLS", shipment.BloodTypeOP, 2, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.items.Add(ctx, item))
	return item
}

// newPackedItem builds an unpersisted packed unit for the given demand line.
func (suite *ShipmentRepositoryIntegrationTestSuite) newPackedItem(
	itemID kernel.UUID, unitNumber, productCode string,
) *shipment.PackedItem {
	packedUnit, err := shipment.NewPackedItem(shipment.NewPackedItemParams{
		ID:                 kernel.NewUUID(),
		ShipmentItemID:     itemID,
		UnitNumber:         unitNumber,
		ProductCode:        productCode,
		ProductDescription: "RBC Leukoreduced",
		ProductFamily:      "RED_BLOOD_CELLS",
		BloodType:          shipment.BloodTypeOP,
		AboRh:              "OP",
		ProductStatus:      "AVAILABLE",
		PackedByEmployeeID: "emp-1",
		VisualInspection:   shipment.VisualInspectionSatisfactory,
		SecondVerification: shipment.SecondVerificationPending,
	})
	suite.Require().NoError(err)
	return packedUnit
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
