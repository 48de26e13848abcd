package models

import "time"

// PublicBookingStatus is the intake status of an unauthenticated booking request.
type PublicBookingStatus string

const (
	PublicStatusNew       PublicBookingStatus = "new"
	PublicStatusContacted PublicBookingStatus = "contacted"
	PublicStatusConfirmed PublicBookingStatus = "confirmed"
	PublicStatusClosed    PublicBookingStatus = "closed"
	PublicStatusRejected  PublicBookingStatus = "rejected"
)

// PublicBookingStatuses lists every intake status.
var PublicBookingStatuses = []PublicBookingStatus{
	PublicStatusNew, PublicStatusContacted, PublicStatusConfirmed, PublicStatusClosed, PublicStatusRejected,
}

// PublicBooking is a quick booking request left by a visitor without an account.
type PublicBooking struct {
	ID               string              `bson:"id" json:"id"`
	BookingReference string              `bson:"bookingReference" json:"bookingReference"`
	Name             string              `bson:"name" json:"name" validate:"required"`
	Email            string              `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone            string              `bson:"phone" json:"phone" validate:"required,min=7,max=20"`
	PickupLocation   string              `bson:"pickupLocation" json:"pickupLocation" validate:"required"`
	DropLocation     string              `bson:"dropLocation,omitempty" json:"dropLocation,omitempty"`
	TravelDate       string              `bson:"travelDate" json:"travelDate" validate:"required"`
	Time             string              `bson:"time,omitempty" json:"time,omitempty"`
	TripType         string              `bson:"tripType,omitempty" json:"tripType,omitempty"`
	VehicleName      string              `bson:"vehicleName,omitempty" json:"vehicleName,omitempty"`
	Price            float64             `bson:"price,omitempty" json:"price,omitempty" validate:"gte=0"`
	Message          string              `bson:"message,omitempty" json:"message,omitempty"`
	Status           PublicBookingStatus `bson:"status" json:"status"`
	AdminNotes       string              `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
