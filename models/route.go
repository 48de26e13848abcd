package models

import "time"

// CarOption is a vehicle choice listed on a route page.
type CarOption struct {
	Name    string  `bson:"name" json:"name" validate:"required"`
	Luggage int     `bson:"luggage" json:"luggage" validate:"gte=0"`
	Price   float64 `bson:"price" json:"price" validate:"gte=0"`
	Seats   int     `bson:"seats" json:"seats" validate:"gte=1"`
}

// RouteOffering is a long-form, content-rich intercity route.
type RouteOffering struct {
	ID            string      `bson:"id" json:"id"`
	Title         string      `bson:"title" json:"title" validate:"required"`
	Slug          string      `bson:"slug" json:"slug"`
	Image         string      `bson:"image,omitempty" json:"image,omitempty"`
	Distance      string      `bson:"distance,omitempty" json:"distance,omitempty"`
	Duration      string      `bson:"duration,omitempty" json:"duration,omitempty"`
	VehicleType   string      `bson:"vehicleType,omitempty" json:"vehicleType,omitempty"`
	CurrentPrice  float64     `bson:"currentPrice" json:"currentPrice" validate:"gte=0"`
	OriginalPrice float64     `bson:"originalPrice" json:"originalPrice" validate:"gte=0"`
	Discount      float64     `bson:"discount" json:"discount"`
	Overview      string      `bson:"overview,omitempty" json:"overview,omitempty"`
	About         string      `bson:"about,omitempty" json:"about,omitempty"`
	BestTime      string      `bson:"bestTime,omitempty" json:"bestTime,omitempty"`
	Features      []string    `bson:"features,omitempty" json:"features,omitempty"`
	Attractions   []string    `bson:"attractions,omitempty" json:"attractions,omitempty"`
	Sightseeing   []string    `bson:"sightseeing,omitempty" json:"sightseeing,omitempty"`
	CarOptions    []CarOption `bson:"carOptions,omitempty" json:"carOptions,omitempty" validate:"dive"`
	Version       int64       `bson:"version" json:"version"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// FindCarOption returns the named car option, if listed.
func (r *RouteOffering) FindCarOption(name string) (CarOption, bool) {
	for _, opt := range r.CarOptions {
		if opt.Name == name {
			return opt, true
		}
	}
	return CarOption{}, false
}
