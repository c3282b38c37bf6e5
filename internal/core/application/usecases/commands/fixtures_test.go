package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/require"
)

const (
	testUnitNumber  = "W123456789012"
	testProductCode = "E0382"
	testEmployeeID  = "emp-1"
)

func newOpenShipmentFixture(t *testing.T) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(kernel.NewUUID(), 1001, "ORD-1001",
		shipment.PriorityRoutine, shipment.ShipmentTypeCustomer, shipment.LabelStatusLabeled,
		"LOC-1", "REFRIGERATED", false, "")
	require.NoError(t, err)

	return s
}

func newCompletedShipmentFixture(t *testing.T) *shipment.Shipment {
	t.Helper()

	completedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s, err := shipment.RestoreShipment(kernel.NewUUID(), 1001, "ORD-1001",
		shipment.StatusCompleted, shipment.PriorityRoutine, shipment.ShipmentTypeCustomer,
		shipment.LabelStatusLabeled, "LOC-1", "REFRIGERATED", false, "", testEmployeeID, &completedAt)
	require.NoError(t, err)

	return s
}

func newQuarantinedTransferFixture(t *testing.T) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(kernel.NewUUID(), 1001, "ORD-1001",
		shipment.PriorityRoutine, shipment.ShipmentTypeInternalTransfer, shipment.LabelStatusLabeled,
		"LOC-1", "REFRIGERATED", true, "")
	require.NoError(t, err)

	return s
}

func newShipmentItemFixture(t *testing.T, shipmentID kernel.UUID) *shipment.ShipmentItem {
	t.Helper()

	item, err := shipment.NewShipmentItem(kernel.NewUUID(), shipmentID,
		"RED_BLOOD_CELLS", shipment.BloodTypeOP, 2, "")
	require.NoError(t, err)

	return item
}

func newPackedItemFixture(t *testing.T, itemID kernel.UUID) *shipment.PackedItem {
	t.Helper()

	packed, err := shipment.NewPackedItem(shipment.NewPackedItemParams{
		ID:                 kernel.NewUUID(),
		ShipmentItemID:     itemID,
		UnitNumber:         testUnitNumber,
		ProductCode:        testProductCode,
		ProductFamily:      "RED_BLOOD_CELLS",
		BloodType:          shipment.BloodTypeOP,
		AboRh:              "OP",
		PackedByEmployeeID: testEmployeeID,
		VisualInspection:   shipment.VisualInspectionSatisfactory,
		SecondVerification: shipment.SecondVerificationPending,
	})
	require.NoError(t, err)

	return packed
}

func cleanInventoryValidation() ports.InventoryValidation {
	return ports.InventoryValidation{
		Record: &ports.InventoryRecord{
			UnitNumber:          testUnitNumber,
			ProductCode:         testProductCode,
			ProductDescription:  "RBC Leukoreduced",
			ProductFamily:       "RED_BLOOD_CELLS",
			AboRh:               "OP",
			Status:              "AVAILABLE",
			TemperatureCategory: "REFRIGERATED",
			IsLabeled:           true,
		},
	}
}
