package models

import (
	"fmt"
	"strings"
	"time"
)

// CabCategory identifies one of the three cab service collections.
type CabCategory string

const (
	CabOneWay    CabCategory = "one-way"
	CabRoundTrip CabCategory = "round-trip"
	CabHourly    CabCategory = "hourly"
)

// CabCategories lists every category in display order.
var CabCategories = []CabCategory{CabOneWay, CabRoundTrip, CabHourly}

var cabCollections = map[CabCategory]string{
	CabOneWay:    "onewaycabs",
	CabRoundTrip: "roundtripcabs",
	CabHourly:    "hourlycabs",
}

// ParseCabCategory accepts the canonical names plus the camel-cased aliases
// older clients still send ("oneway", "roundtrip").
func ParseCabCategory(s string) (CabCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-way", "oneway", "one_way":
		return CabOneWay, true
	case "round-trip", "roundtrip", "round_trip":
		return CabRoundTrip, true
	case "hourly":
		return CabHourly, true
	}
	return "", false
}

// Collection returns the Mongo collection backing the category.
func (c CabCategory) Collection() string {
	return cabCollections[c]
}

func (c CabCategory) String() string { return string(c) }

// CabOffering is one bookable vehicle on a route (one-way / round-trip) or
// a city package (hourly).
type CabOffering struct {
	ID               string      `bson:"id" json:"id"`
	Category         CabCategory `bson:"category" json:"category"`
	From             string      `bson:"from,omitempty" json:"from,omitempty"`
	To               string      `bson:"to,omitempty" json:"to,omitempty"`
	City             string      `bson:"city,omitempty" json:"city,omitempty"`
	Hours            string      `bson:"hours,omitempty" json:"hours,omitempty"`
	VehicleName      string      `bson:"vehicleName" json:"vehicleName" validate:"required"`
	Image            string      `bson:"image,omitempty" json:"image,omitempty"`
	BasePrice        float64     `bson:"basePrice" json:"basePrice" validate:"gt=0"`
	Seats            int         `bson:"seats" json:"seats" validate:"gte=1"`
	Luggage          int         `bson:"luggage" json:"luggage" validate:"gte=0"`
	IncrementPercent float64     `bson:"incrementPercent" json:"incrementPercent"`
	Version          int64       `bson:"version" json:"version"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CheckRouteFields verifies the category-specific descriptor is present.
func (o *CabOffering) CheckRouteFields() error {
	switch o.Category {
	case CabOneWay, CabRoundTrip:
		if strings.TrimSpace(o.From) == "" || strings.TrimSpace(o.To) == "" {
			return fmt.Errorf("from and to are required for %s cabs", o.Category)
		}
	case CabHourly:
		if strings.TrimSpace(o.City) == "" || strings.TrimSpace(o.Hours) == "" {
			return fmt.Errorf("city and hours are required for hourly cabs")
		}
	default:
		return fmt.Errorf("unknown cab category %q", o.Category)
	}
	return nil
}

// QuoteFilter selects cab offerings by exact route match.
type QuoteFilter struct {
	Category CabCategory `json:"category"`
	From     string      `json:"from,omitempty"`
	To       string      `json:"to,omitempty"`
	City     string      `json:"city,omitempty"`
	Hours    string      `json:"hours,omitempty"`
}

// CabQuote is an offering with its computed display price. It is never stored.
type CabQuote struct {
	CabOffering
	DisplayPrice float64 `json:"displayPrice"`
}
