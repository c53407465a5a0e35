// Package quote provides the Quote aggregate: a priced freight request.
//
// Key business rules:
//   - price_usd and eta_days are always derived by a Pricer, never supplied by a client
//   - mode is one of air, sea, road
//   - weight_kg, volume_cbm, price_usd and eta_days are strictly positive
//
// RestoreQuote rebuilds a Quote from stored values and re-checks the same rules.
package quote
