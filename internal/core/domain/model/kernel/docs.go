// Package kernel provides the value objects shared by the quote and shipment models.
//
// The package includes:
//   - Mode: the transport method (air, sea, road) of a freight request
//   - Route: the origin and destination of a freight request
//   - Cargo: the chargeable weight and volume of a freight request
//
// Route and Cargo embed a guard.ConstructorGuard, so a zero value fails
// Validate and only constructor-built values reach the aggregates.
package kernel
