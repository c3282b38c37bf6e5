package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
)

var (
	// ErrPackedItemIsNotConstructed is returned when a PackedItem was not
	// created through NewPackedItem or RestorePackedItem.
	ErrPackedItemIsNotConstructed = errors.New(
		"PackedItem must be created via NewPackedItem constructor",
	)

	// ErrUnitAlreadyVerified is returned when verifying a unit whose second
	// verification is already completed. Verifying twice is not a state
	// change, just a reported rejection.
	ErrUnitAlreadyVerified = errors.New("unit is already verified")

	// ErrUnitVerificationDisabled is returned when verifying a unit packed
	// while the second-verification flag was inactive.
	ErrUnitVerificationDisabled = errors.New("unit does not require verification")
)

// PackedItem is one physical unit packed against a demand line. It is created
// by the Pack operation, mutated by Verify (second verification) and by the
// ineligible-flagging paths, and removed entirely by Unpack or by the
// Ineligible-Item Removal operation (which audits it first).
type PackedItem struct {
	id                   kernel.UUID
	shipmentItemID       kernel.UUID
	unitNumber           string
	productCode          string
	productDescription   string
	productFamily        string
	bloodType            BloodType
	aboRh                string
	productStatus        string
	expirationDate       *time.Time
	collectionDate       *time.Time
	packedByEmployeeID   string
	visualInspection     VisualInspection
	secondVerification   SecondVerification
	verifiedByEmployeeID string
	ineligible           *IneligibleDetail

	isConstructed bool
}

// NewPackedItemParams carries the creation attributes for a packed unit: the
// scanned identifiers, the inventory record snapshot, and the flag-dependent
// inspection/verification states.
type NewPackedItemParams struct {
	ID                 kernel.UUID
	ShipmentItemID     kernel.UUID
	UnitNumber         string
	ProductCode        string
	ProductDescription string
	ProductFamily      string
	BloodType          BloodType
	AboRh              string
	ProductStatus      string
	ExpirationDate     *time.Time
	CollectionDate     *time.Time
	PackedByEmployeeID string
	VisualInspection   VisualInspection
	SecondVerification SecondVerification
}

// NewPackedItem creates a freshly packed unit. The unit starts unverified:
// re-packing a previously packed and verified unit yields a new Pending
// record, never a resurrected verification state.
func NewPackedItem(p NewPackedItemParams) (*PackedItem, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.ShipmentItemID.Validate(),
		validateRequired("unitNumber", p.UnitNumber),
		validateRequired("productCode", p.ProductCode),
		validateRequired("packedByEmployeeId", p.PackedByEmployeeID),
		p.VisualInspection.Validate(),
		p.SecondVerification.Validate(),
	); err != nil {
		return nil, err
	}

	return &PackedItem{
		id:                 p.ID,
		shipmentItemID:     p.ShipmentItemID,
		unitNumber:         p.UnitNumber,
		productCode:        p.ProductCode,
		productDescription: p.ProductDescription,
		productFamily:      p.ProductFamily,
		bloodType:          p.BloodType,
		aboRh:              p.AboRh,
		productStatus:      p.ProductStatus,
		expirationDate:     p.ExpirationDate,
		collectionDate:     p.CollectionDate,
		packedByEmployeeID: p.PackedByEmployeeID,
		visualInspection:   p.VisualInspection,
		secondVerification: p.SecondVerification,
		isConstructed:      true,
	}, nil
}

// RestorePackedItemParams carries the full persisted state of a packed unit.
type RestorePackedItemParams struct {
	NewPackedItemParams
	VerifiedByEmployeeID string
	Ineligible           *IneligibleDetail
}

// RestorePackedItem reconstructs a packed unit from persistence.
func RestorePackedItem(p RestorePackedItemParams) (*PackedItem, error) {
	if err := errors.Join(p.ID.Validate(), p.ShipmentItemID.Validate()); err != nil {
		return nil, err
	}

	return &PackedItem{
		id:                   p.ID,
		shipmentItemID:       p.ShipmentItemID,
		unitNumber:           p.UnitNumber,
		productCode:          p.ProductCode,
		productDescription:   p.ProductDescription,
		productFamily:        p.ProductFamily,
		bloodType:            p.BloodType,
		aboRh:                p.AboRh,
		productStatus:        p.ProductStatus,
		expirationDate:       p.ExpirationDate,
		collectionDate:       p.CollectionDate,
		packedByEmployeeID:   p.PackedByEmployeeID,
		visualInspection:     p.VisualInspection,
		secondVerification:   p.SecondVerification,
		verifiedByEmployeeID: p.VerifiedByEmployeeID,
		ineligible:           p.Ineligible,
		isConstructed:        true,
	}, nil
}

// Validate ensures the PackedItem instance was properly constructed.
func (p *PackedItem) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackedItemIsNotConstructed
	}
	return nil
}

// ID returns the packed unit's unique identifier.
func (p *PackedItem) ID() kernel.UUID { return p.id }

// ShipmentItemID returns the owning demand line's identifier.
func (p *PackedItem) ShipmentItemID() kernel.UUID { return p.shipmentItemID }

// UnitNumber returns the physical unit's number.
func (p *PackedItem) UnitNumber() string { return p.unitNumber }

// ProductCode returns the packed product code.
func (p *PackedItem) ProductCode() string { return p.productCode }

// ProductDescription returns the inventory description snapshot.
func (p *PackedItem) ProductDescription() string { return p.productDescription }

// ProductFamily returns the product family copied from the demand line.
func (p *PackedItem) ProductFamily() string { return p.productFamily }

// BloodType returns the blood type criterion copied from the demand line.
func (p *PackedItem) BloodType() BloodType { return p.bloodType }

// AboRh returns the unit's ABO/Rh as reported by the inventory authority.
func (p *PackedItem) AboRh() string { return p.aboRh }

// ProductStatus returns the inventory status snapshot taken at pack time.
func (p *PackedItem) ProductStatus() string { return p.productStatus }

// ExpirationDate returns the unit's expiration date, if known.
func (p *PackedItem) ExpirationDate() *time.Time { return p.expirationDate }

// CollectionDate returns the unit's collection date, if known.
func (p *PackedItem) CollectionDate() *time.Time { return p.collectionDate }

// PackedByEmployeeID returns the employee who packed the unit.
func (p *PackedItem) PackedByEmployeeID() string { return p.packedByEmployeeID }

// VisualInspection returns the recorded visual inspection result.
func (p *PackedItem) VisualInspection() VisualInspection { return p.visualInspection }

// SecondVerification returns the unit's verification state.
func (p *PackedItem) SecondVerification() SecondVerification { return p.secondVerification }

// VerifiedByEmployeeID returns the verifying employee, empty until verified.
func (p *PackedItem) VerifiedByEmployeeID() string { return p.verifiedByEmployeeID }

// Ineligible returns the ineligibility diagnostics, nil while the unit is
// still eligible for shipping.
func (p *PackedItem) Ineligible() *IneligibleDetail { return p.ineligible }

// Matches reports whether this record is the given physical unit.
func (p *PackedItem) Matches(unitNumber, productCode string) bool {
	return p.unitNumber == unitNumber && p.productCode == productCode
}

// IsVerificationPending reports whether the unit still awaits its second scan.
func (p *PackedItem) IsVerificationPending() bool {
	return p.secondVerification.IsPending()
}

// IsVerified reports whether the unit's second verification is completed.
func (p *PackedItem) IsVerified() bool {
	return p.secondVerification == SecondVerificationCompleted
}

// IsIneligible reports whether the inventory authority has flagged the unit.
func (p *PackedItem) IsIneligible() bool {
	return p.ineligible != nil
}

// Verify completes the unit's second verification, recording the verifying
// employee. Verifying an already-verified unit returns ErrUnitAlreadyVerified
// and leaves the record unchanged, so the operation is idempotent.
func (p *PackedItem) Verify(employeeID string) error {
	switch p.secondVerification {
	case SecondVerificationCompleted:
		return ErrUnitAlreadyVerified
	case SecondVerificationDisabled:
		return ErrUnitVerificationDisabled
	default:
		p.secondVerification = SecondVerificationCompleted
		p.verifiedByEmployeeID = employeeID
		return nil
	}
}

// ResetVerification returns the unit to Pending and clears the verifying
// employee. Used when the verification round restarts: after a cancel, or
// when a new unit is packed into an already-verified shipment.
func (p *PackedItem) ResetVerification() {
	if p.secondVerification == SecondVerificationDisabled {
		return
	}
	p.secondVerification = SecondVerificationPending
	p.verifiedByEmployeeID = ""
}

// MarkIneligible copies the inventory authority's diagnostics onto the unit,
// placing it in the to-be-removed set consumed by the removal operation.
// Removal never discovers ineligibility itself; it only consumes this detail.
func (p *PackedItem) MarkIneligible(detail IneligibleDetail) {
	p.ineligible = &detail
}
