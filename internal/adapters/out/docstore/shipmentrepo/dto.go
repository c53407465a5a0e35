// Package shipmentrepo stores shipment aggregates in the shipment collection.
// Shipments are read back as raw documents, so only the write mapping exists.
package shipmentrepo

import (
	"logiflow/internal/core/domain/model/shipment"
	"logiflow/internal/core/ports"
)

// fromDomain converts a shipment aggregate to its stored representation.
// quote_id is written as null when the shipment carries no quote reference.
func fromDomain(s *shipment.Shipment) ports.Document {
	var quoteID any
	if id := s.QuoteID(); id != nil {
		quoteID = *id
	}

	return ports.Document{
		"tracking_number": s.TrackingNumber().String(),
		"origin":          s.Route().Origin(),
		"destination":     s.Route().Destination(),
		"mode":            s.Mode().String(),
		"weight_kg":       s.Cargo().WeightKg(),
		"volume_cbm":      s.Cargo().VolumeCbm(),
		"shipper_name":    s.ShipperName(),
		"shipper_email":   s.ShipperEmail(),
		"status":          s.Status().String(),
		"quote_id":        quoteID,
	}
}
