package models

import (
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/textx"
)

// Property is a rentable unit. OwnerID refers to a User by value.
type Property struct {
	ID            string
	OwnerID       string
	Title         string
	Description   string
	City          string
	Address       string
	PropertyType  string
	Capacity      int
	Bedrooms      int
	Bathrooms     int
	PricePerNight float64
	Amenities     []string
	Available     bool
}

// NewProperty returns an available property with no amenities.
func NewProperty() *Property {
	return &Property{Available: true}
}

// RecordID returns the primary key.
func (p *Property) RecordID() string { return p.ID }

// SetRecordID assigns the primary key.
func (p *Property) SetRecordID(id string) { p.ID = id }

// AddAmenity appends name unless an amenity with the same normalized key is
// already present. Blank names are ignored.
func (p *Property) AddAmenity(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || p.HasAmenity(name) {
		return false
	}
	p.Amenities = append(p.Amenities, name)
	return true
}

// HasAmenity reports whether the property offers name, compared by
// normalized key.
func (p *Property) HasAmenity(name string) bool {
	k := textx.Key(name)
	for _, a := range p.Amenities {
		if textx.Key(a) == k {
			return true
		}
	}
	return false
}

// HasAll reports whether every non-blank name is offered.
func (p *Property) HasAll(names []string) bool {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		if !p.HasAmenity(n) {
			return false
		}
	}
	return true
}

// AmenitiesText joins the amenities for display.
func (p *Property) AmenitiesText() string {
	if len(p.Amenities) == 0 {
		return "No amenities"
	}
	return strings.Join(p.Amenities, ", ")
}

// Clone returns an independent copy of p.
func (p *Property) Clone() *Property {
	c := *p
	if p.Amenities != nil {
		c.Amenities = append([]string(nil), p.Amenities...)
	}
	return &c
}
