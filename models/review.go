package models

import "time"

// Review is a customer testimonial curated by admins.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" validate:"required"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Rating    int       `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Comment   string    `bson:"comment" json:"comment" validate:"required"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
