// Package retailer contains the read-mostly reference entities of the
// catalog: a Retailer owning zero-or-more Listings. Listings feed into
// orders at checkout time; the core workflows only read them.
package retailer

import (
	"thumathina/internal/core/domain/model/kernel"
	"thumathina/internal/pkg/errs"
)

// Retailer is a merchant selling through the platform.
type Retailer struct {
	id   kernel.UUID
	name string
}

// NewRetailer creates a retailer reference entity.
func NewRetailer(id kernel.UUID, name string) (*Retailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Retailer{id: id, name: name}, nil
}

// ID returns the retailer's unique identifier.
func (r *Retailer) ID() kernel.UUID {
	return r.id
}

// Name returns the retailer's trading name.
func (r *Retailer) Name() string {
	return r.name
}

// Listing is a sellable item belonging to a retailer.
type Listing struct {
	id         kernel.UUID
	retailerID kernel.UUID
	title      string
	unitPrice  kernel.Money
	available  bool
}

// NewListing creates a listing reference entity.
func NewListing(id, retailerID kernel.UUID, title string, unitPrice kernel.Money, available bool) (*Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := retailerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("retailerID", err)
	}

	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}

	return &Listing{
		id:         id,
		retailerID: retailerID,
		title:      title,
		unitPrice:  unitPrice,
		available:  available,
	}, nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// RetailerID returns the owning retailer.
func (l *Listing) RetailerID() kernel.UUID {
	return l.retailerID
}

// Title returns the listing title.
func (l *Listing) Title() string {
	return l.title
}

// UnitPrice returns the current unit price in whole rand.
func (l *Listing) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Available reports whether the listing can be ordered.
func (l *Listing) Available() bool {
	return l.available
}
