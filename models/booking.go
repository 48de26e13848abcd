package models

import (
	"math"
	"time"
)

// BookingStatus is the lifecycle state of a customer booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingStatuses lists every status in lifecycle order.
var BookingStatuses = []BookingStatus{
	StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
}

// IsKnown reports whether s is one of the lifecycle statuses.
func (s BookingStatus) IsKnown() bool {
	for _, st := range BookingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// BookingType says which kind of offering a booking was made for.
type BookingType string

const (
	BookingTypeRoute BookingType = "route"
	BookingTypeTour  BookingType = "tour"
	BookingTypeCab   BookingType = "cab"
)

// IsKnown reports whether t is a supported booking type.
func (t BookingType) IsKnown() bool {
	return t == BookingTypeRoute || t == BookingTypeTour || t == BookingTypeCab
}

// Booking is the central stateful record. Contact fields and price are
// snapshots taken at creation; later edits to the user or the offering
// never touch them.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	BookingReference string        `bson:"bookingReference" json:"bookingReference"`
	UserID           string        `bson:"userId" json:"userId"`
	UserName         string        `bson:"userName" json:"userName"`
	UserEmail        string        `bson:"userEmail" json:"userEmail"`
	UserPhone        string        `bson:"userPhone" json:"userPhone"`
	UserAddress      string        `bson:"userAddress" json:"userAddress"`
	BookingType      BookingType   `bson:"bookingType" json:"bookingType"`
	RouteID          string        `bson:"routeId,omitempty" json:"routeId,omitempty"`
	TourID           string        `bson:"tourId,omitempty" json:"tourId,omitempty"`
	CabID            string        `bson:"cabId,omitempty" json:"cabId,omitempty"`
	CabCategory      CabCategory   `bson:"cabCategory,omitempty" json:"cabCategory,omitempty"`
	CarOption        string        `bson:"carOption,omitempty" json:"carOption,omitempty"`
	Title            string        `bson:"title" json:"title"`
	Image            string        `bson:"image,omitempty" json:"image,omitempty"`
	Price            float64       `bson:"price" json:"price"`
	TravelDate       string        `bson:"travelDate" json:"travelDate"`
	Time             string        `bson:"time,omitempty" json:"time,omitempty"`
	SpecialRequests  string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	PickupLocation   string        `bson:"pickupLocation,omitempty" json:"pickupLocation,omitempty"`
	DropLocation     string        `bson:"dropLocation,omitempty" json:"dropLocation,omitempty"`
	TripType         string        `bson:"tripType,omitempty" json:"tripType,omitempty"`
	Status           BookingStatus `bson:"status" json:"status"`
	AdminNotes       string        `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	ConfirmedAt      *time.Time    `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	StartedAt        *time.Time    `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	CompletedAt      *time.Time    `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancelledAt      *time.Time    `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancelledBy      string        `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	Version          int64         `bson:"version" json:"version"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// BookingView is a booking with its offering references populated.
type BookingView struct {
	Booking
	Route *RouteOffering `json:"route,omitempty"`
	Tour  *TourOffering  `json:"tour,omitempty"`
	Cab   *CabOffering   `json:"cab,omitempty"`
}

// BookingFilter narrows admin booking listings.
type BookingFilter struct {
	Status BookingStatus
	Search string
	UserID string
	From   *time.Time
	To     *time.Time
}

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Skip returns the number of documents before the page.
func (p Page) Skip() int64 {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	n, size := int64(p.Number-1), int64(p.Size)
	if n > math.MaxInt64/size {
		return math.MaxInt64
	}
	return n * size
}

// Pagination describes the page returned alongside a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination derives page counts for total matching documents.
func NewPagination(p Page, total int64) Pagination {
	pages := int64(0)
	if p.Size > 0 {
		pages = (total + int64(p.Size) - 1) / int64(p.Size)
	}
	return Pagination{Page: p.Number, Limit: p.Size, Total: total, TotalPages: pages}
}

// StatusChange is one conditional status write: it applies only while the
// stored status still equals From.
type StatusChange struct {
	From        BookingStatus
	To          BookingStatus
	At          time.Time
	AdminNotes  *string
	CancelledBy string
}

// BookingRequest is a customer's selection plus optional contact overrides.
// Contact fields left empty are taken from the profile.
type BookingRequest struct {
	BookingType     BookingType `json:"bookingType" binding:"required" validate:"required,oneof=route tour cab"`
	RouteID         string      `json:"routeId,omitempty"`
	TourID          string      `json:"tourId,omitempty"`
	CabID           string      `json:"cabId,omitempty"`
	CabCategory     string      `json:"cabCategory,omitempty"`
	CarOption       string      `json:"carOption,omitempty"`
	TravelDate      string      `json:"travelDate" binding:"required" validate:"required,datetime=2006-01-02"`
	Time            string      `json:"time,omitempty" validate:"omitempty,max=20"`
	SpecialRequests string      `json:"specialRequests,omitempty" validate:"omitempty,max=1000"`
	PickupLocation  string      `json:"pickupLocation,omitempty" validate:"omitempty,max=300"`
	DropLocation    string      `json:"dropLocation,omitempty" validate:"omitempty,max=300"`
	TripType        string      `json:"tripType,omitempty" validate:"omitempty,max=40"`
	Name            string      `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Email           string      `json:"email,omitempty" validate:"omitempty,email"`
	Phone           string      `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Address         string      `json:"address,omitempty" validate:"omitempty,max=300"`
}

// BookingList is one page of bookings with per-status totals.
type BookingList struct {
	Bookings     []Booking               `json:"bookings"`
	Pagination   Pagination              `json:"pagination"`
	StatusCounts map[BookingStatus]int64 `json:"statusCounts,omitempty"`
}
