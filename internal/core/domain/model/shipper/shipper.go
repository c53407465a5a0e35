package shipper

import (
	"errors"
	"strings"

	"logiflow/internal/pkg/errs"
)

// ErrShipperIsNotConstructed is returned when a Shipper was not created through NewShipper.
var ErrShipperIsNotConstructed = errors.New("Shipper must be created via NewShipper constructor")

// Shipper is the party that books freight.
//
// Invariants:
//   - name is not blank
//   - email is not blank
//   - phone and address are optional
type Shipper struct {
	name    string
	email   string
	phone   *string
	address *string

	isConstructed bool
}

// NewShipper creates a Shipper.
//
// Parameters:
//   - name: company or individual name (required)
//   - email: contact email (required)
//   - phone: contact phone, nil when unknown
//   - address: headquarters or primary address, nil when unknown
func NewShipper(name, email string, phone, address *string) (*Shipper, error) {
	s := &Shipper{
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setName(name),
		s.setEmail(email),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the shipper was created through NewShipper.
func (s *Shipper) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipperIsNotConstructed
	}
	return nil
}

// Name returns the shipper's name.
func (s *Shipper) Name() string {
	return s.name
}

// Email returns the contact email.
func (s *Shipper) Email() string {
	return s.email
}

// Phone returns the contact phone, or nil.
func (s *Shipper) Phone() *string {
	return s.phone
}

// Address returns the primary address, or nil.
func (s *Shipper) Address() *string {
	return s.address
}

func (s *Shipper) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Shipper) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	s.email = email
	return nil
}
