// Package tracking provides the tracking Event: one entry in the history of a
// tracking number.
//
// Events reference shipments by tracking number only. Nothing enforces that
// the shipment exists.
package tracking
