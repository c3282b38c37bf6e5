package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Open ──> Completed
//
// Completed is terminal: no packing, unpacking, verification, or removal is
// permitted once a shipment reaches it, and a shipment completes exactly once.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOpen is the initial status while units are being packed and verified.
	StatusOpen

	// StatusCompleted indicates the shipment has been finalized.
	// This is a final state with no further transitions allowed.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusOpen:      "OPEN",
		StatusCompleted: "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOpen:      "OPEN",
		StatusCompleted: "COMPLETED",
	}
}

// StatusFromString parses a persisted status representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are Open and Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Open -> Completed
//
// Returns (0, error) when the shipment is already Completed or the status is
// invalid. Completion is the only way to leave Open.
func (s Status) Complete() (Status, error) {
	if s != StatusOpen {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusCompleted, nil
}
