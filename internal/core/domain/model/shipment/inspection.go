package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// VisualInspection is the packer's recorded visual check of a unit.
type VisualInspection int

const (
	VisualInspectionUnknown VisualInspection = iota

	// VisualInspectionSatisfactory means the unit passed the packer's visual check.
	VisualInspectionSatisfactory

	// VisualInspectionUnsatisfactory means the unit failed the visual check
	// and must be discarded rather than packed.
	VisualInspectionUnsatisfactory

	// VisualInspectionDisabled means the unit was packed while the
	// visual-inspection flag was inactive.
	VisualInspectionDisabled
)

func getVisualInspectionStrings() map[VisualInspection]string {
	return map[VisualInspection]string{
		VisualInspectionUnknown:        "Unknown",
		VisualInspectionSatisfactory:   "SATISFACTORY",
		VisualInspectionUnsatisfactory: "UNSATISFACTORY",
		VisualInspectionDisabled:       "DISABLED",
	}
}

// VisualInspectionFromString parses a persisted visual inspection result.
func VisualInspectionFromString(s string) (VisualInspection, error) {
	for v, str := range getVisualInspectionStrings() {
		if v != VisualInspectionUnknown && str == s {
			return v, nil
		}
	}
	return VisualInspectionUnknown, errs.NewValueIsInvalidErrorWithCause("visualInspection is invalid",
		fmt.Errorf("%q is not a valid visual inspection result", s))
}

// Validate checks if the VisualInspection value is valid.
func (v VisualInspection) Validate() error {
	if v != VisualInspectionSatisfactory && v != VisualInspectionUnsatisfactory && v != VisualInspectionDisabled {
		return errs.NewValueIsInvalidErrorWithCause("visualInspection is invalid",
			fmt.Errorf("%d is not a valid visual inspection result", v))
	}
	return nil
}

// String returns the persisted name of the inspection result.
func (v VisualInspection) String() string {
	if str, ok := getVisualInspectionStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
