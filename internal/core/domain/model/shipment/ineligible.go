package shipment

// IneligibleStatus names the inventory-authority condition that made a packed
// unit ineligible for shipping. The values mirror the authority's
// notification types so diagnostics can be copied verbatim onto the packed
// record when the unit is flagged.
type IneligibleStatus string

const (
	IneligibleStatusExpired     IneligibleStatus = "INVENTORY_IS_EXPIRED"
	IneligibleStatusDiscarded   IneligibleStatus = "INVENTORY_IS_DISCARDED"
	IneligibleStatusQuarantined IneligibleStatus = "INVENTORY_IS_QUARANTINED"
	IneligibleStatusUnlabeled   IneligibleStatus = "INVENTORY_IS_UNLABELED"
	IneligibleStatusNotFound    IneligibleStatus = "INVENTORY_NOT_FOUND"
)

// String returns the persisted name of the status.
func (s IneligibleStatus) String() string {
	return string(s)
}

// IneligibleDetail carries the diagnostic fields copied from the inventory
// authority at the time a packed unit was flagged ineligible. The detail is
// what the removal flow shows the operator and what the removal audit row
// preserves.
type IneligibleDetail struct {
	Status  IneligibleStatus
	Action  string
	Reason  string
	Message string
}
