package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// SecondVerification tracks the independent re-scan state of a packed unit.
//
// When the second-verification configuration flag is active, freshly packed
// units start as Pending and move to Completed when a second operator scans
// them. When the flag is inactive, units are created as Disabled and never
// gate shipment completion.
type SecondVerification int

const (
	SecondVerificationUnknown SecondVerification = iota

	// SecondVerificationPending means the unit still awaits an independent re-scan.
	SecondVerificationPending

	// SecondVerificationCompleted means a second operator confirmed the unit.
	SecondVerificationCompleted

	// SecondVerificationDisabled means the unit was packed while the
	// second-verification flag was inactive.
	SecondVerificationDisabled
)

func getSecondVerificationStrings() map[SecondVerification]string {
	return map[SecondVerification]string{
		SecondVerificationUnknown:   "Unknown",
		SecondVerificationPending:   "PENDING",
		SecondVerificationCompleted: "COMPLETED",
		SecondVerificationDisabled:  "DISABLED",
	}
}

// SecondVerificationFromString parses a persisted verification state.
func SecondVerificationFromString(s string) (SecondVerification, error) {
	for v, str := range getSecondVerificationStrings() {
		if v != SecondVerificationUnknown && str == s {
			return v, nil
		}
	}
	return SecondVerificationUnknown, errs.NewValueIsInvalidErrorWithCause("secondVerification is invalid",
		fmt.Errorf("%q is not a valid second verification state", s))
}

// Validate checks if the SecondVerification value is valid.
func (v SecondVerification) Validate() error {
	if v != SecondVerificationPending && v != SecondVerificationCompleted && v != SecondVerificationDisabled {
		return errs.NewValueIsInvalidErrorWithCause("secondVerification is invalid",
			fmt.Errorf("%d is not a valid second verification state", v))
	}
	return nil
}

// String returns the persisted name of the verification state.
func (v SecondVerification) String() string {
	if str, ok := getSecondVerificationStrings()[v]; ok {
		return str
	}
	return "Unknown"
}

// IsPending reports whether the unit still awaits its independent re-scan.
func (v SecondVerification) IsPending() bool {
	return v == SecondVerificationPending
}
