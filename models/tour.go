package models

import "time"

// ItineraryDay holds up to four time-of-day activities.
type ItineraryDay struct {
	Day       int    `bson:"day" json:"day" validate:"gte=1"`
	Title     string `bson:"title" json:"title"`
	Morning   string `bson:"morning,omitempty" json:"morning,omitempty"`
	Afternoon string `bson:"afternoon,omitempty" json:"afternoon,omitempty"`
	Evening   string `bson:"evening,omitempty" json:"evening,omitempty"`
	Night     string `bson:"night,omitempty" json:"night,omitempty"`
}

// TourOffering is a multi-day packaged tour.
type TourOffering struct {
	ID          string         `bson:"id" json:"id"`
	Title       string         `bson:"title" json:"title" validate:"required"`
	Slug        string         `bson:"slug" json:"slug"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Image       string         `bson:"image,omitempty" json:"image,omitempty"`
	Tag         string         `bson:"tag,omitempty" json:"tag,omitempty"`
	Duration    string         `bson:"duration,omitempty" json:"duration,omitempty"`
	Price       float64        `bson:"price" json:"price" validate:"gt=0"`
	Rating      float64        `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Itinerary   []ItineraryDay `bson:"itinerary,omitempty" json:"itinerary,omitempty" validate:"dive"`
	Summary     string         `bson:"summary,omitempty" json:"summary,omitempty"`
	TravelTips  []string       `bson:"travelTips,omitempty" json:"travelTips,omitempty"`
	Closing     string         `bson:"closing,omitempty" json:"closing,omitempty"`
	Version     int64          `bson:"version" json:"version"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}
