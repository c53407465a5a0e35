// Package shipment provides the Shipment aggregate and its value objects.
//
// The package includes:
//   - Shipment: a booked consignment identified by its tracking number
//   - Status: the lifecycle state of a shipment
//   - TrackingNumber: the public identifier correlating a shipment with its tracking events
//
// A shipment is created once, at booking time, in the Created status.
package shipment
