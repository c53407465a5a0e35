// Package services provides domain services of the freight model: logic that
// belongs to no single aggregate.
//
// The package includes:
//   - QuoteEngine: the deterministic price and transit-time formula behind quotes
package services
