// Package shipment implements the shipment fulfillment domain model: the
// Shipment aggregate root, its demand lines (ShipmentItem), the physical
// units packed against those lines (PackedItem), the append-only audit trail
// of removed units (RemovedItem), and the short-date advisories shown to
// packers (ShortDateProduct).
//
// The aggregate enforces the fulfillment state machine:
//
//	Shipment:    Open ──[complete, verification satisfied]──> Completed (terminal)
//	Packed unit: (absent) ──[pack]──> Pending ──[verify]──> Completed
//	             Packed(*) ──[unpack]──> (absent)
//	             Packed(*) ──[ineligible + remove]──> (absent, audited)
//
// All entities follow the constructor/Restore pattern: New* constructors
// validate invariants for new instances, Restore* functions rebuild instances
// from persistence without re-running creation-time rules.
package shipment
