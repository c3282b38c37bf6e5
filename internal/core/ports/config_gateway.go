package ports

import "context"

// DiscardReason is one choice offered to the operator when a unit fails
// visual inspection.
type DiscardReason struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ConfigGateway is the outbound port to the configuration service holding
// the process toggles of the packing workflow.
type ConfigGateway interface {
	// VisualInspectionActive reports whether packed units must pass a visual
	// inspection gate.
	VisualInspectionActive(ctx context.Context) (bool, error)

	// SecondVerificationActive reports whether packed units require a second
	// scan before the shipment can complete.
	SecondVerificationActive(ctx context.Context) (bool, error)

	// CheckDigitActive reports whether manually keyed unit numbers require a
	// check digit.
	CheckDigitActive(ctx context.Context) (bool, error)

	// VisualInspectionDiscardReasons lists the discard reasons offered when
	// a unit fails visual inspection.
	VisualInspectionDiscardReasons(ctx context.Context) ([]DiscardReason, error)
}
