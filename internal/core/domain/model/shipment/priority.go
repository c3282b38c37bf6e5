package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Priority is the fulfillment urgency assigned by the order service.
type Priority string

const (
	PriorityStat    Priority = "STAT"
	PriorityASAP    Priority = "ASAP"
	PriorityRoutine Priority = "ROUTINE"
)

// PriorityFromString parses a persisted priority value.
func PriorityFromString(s string) (Priority, error) {
	p := Priority(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	switch p {
	case PriorityStat, PriorityASAP, PriorityRoutine:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", string(p)))
}

// String returns the persisted name of the priority.
func (p Priority) String() string {
	return string(p)
}
