package shipment

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// BloodType is the ABO/Rh criterion on a shipment demand line.
//
// The special value BloodTypeAny matches every unit; any other value matches
// when the inventory record's aboRh field contains it.
type BloodType string

const (
	BloodTypeAny BloodType = "ANY"
	BloodTypeOP  BloodType = "OP"
	BloodTypeON  BloodType = "ON"
	BloodTypeAP  BloodType = "AP"
	BloodTypeAN  BloodType = "AN"
	BloodTypeBP  BloodType = "BP"
	BloodTypeBN  BloodType = "BN"
	BloodTypeABP BloodType = "ABP"
	BloodTypeABN BloodType = "ABN"
)

func validBloodTypes() map[BloodType]struct{} {
	return map[BloodType]struct{}{
		BloodTypeAny: {}, BloodTypeOP: {}, BloodTypeON: {}, BloodTypeAP: {}, BloodTypeAN: {},
		BloodTypeBP: {}, BloodTypeBN: {}, BloodTypeABP: {}, BloodTypeABN: {},
	}
}

// BloodTypeFromString parses a persisted blood type value.
func BloodTypeFromString(s string) (BloodType, error) {
	bt := BloodType(s)
	if err := bt.Validate(); err != nil {
		return "", err
	}
	return bt, nil
}

// Validate checks if the BloodType value is valid.
func (b BloodType) Validate() error {
	if _, ok := validBloodTypes()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("bloodType is invalid",
			fmt.Errorf("%q is not a valid blood type", string(b)))
	}
	return nil
}

// Matches reports whether a unit with the given aboRh satisfies this criterion.
func (b BloodType) Matches(aboRh string) bool {
	if b == BloodTypeAny {
		return true
	}
	return strings.Contains(aboRh, string(b))
}

// String returns the persisted name of the blood type.
func (b BloodType) String() string {
	return string(b)
}
