// Package docstore holds the backend-independent parts of document persistence:
// the in-memory and degraded DocumentStore implementations and the field
// decoders the entity repositories use to read loosely typed documents.
//
// The entity repositories live in the quoterepo, shipmentrepo and trackingrepo
// subpackages. Network backends live in the sibling mongo and postgres packages.
package docstore
