// Package shipper provides the Shipper entity: the company or person that
// hands cargo over for carriage.
//
// Bookings currently inline the shipper's name and email into the shipment,
// so no endpoint persists a Shipper yet.
package shipper
