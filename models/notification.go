package models

// NotificationKind names the booking event a notification reports.
type NotificationKind string

const (
	NotifyConfirmation  NotificationKind = "booking_confirmed"
	NotifyTripStarted   NotificationKind = "trip_started"
	NotifyTripCompleted NotificationKind = "trip_completed"
	NotifyCancellation  NotificationKind = "booking_cancelled"
	NotifyTripReminder  NotificationKind = "trip_reminder"
	NotifyAdminNew      NotificationKind = "admin_new_booking"
	NotifyAdminPublic   NotificationKind = "admin_new_public_booking"
	NotifyOTP           NotificationKind = "login_otp"
)

// BookingSnapshot is the booking data a notification is rendered from.
type BookingSnapshot struct {
	BookingReference string  `json:"bookingReference"`
	UserName         string  `json:"userName"`
	UserEmail        string  `json:"userEmail"`
	UserPhone        string  `json:"userPhone,omitempty"`
	Title            string  `json:"title"`
	Price            float64 `json:"price"`
	TravelDate       string  `json:"travelDate"`
	Time             string  `json:"time,omitempty"`
	PickupLocation   string  `json:"pickupLocation,omitempty"`
	DropLocation     string  `json:"dropLocation,omitempty"`
	Status           string  `json:"status"`
	AdminNotes       string  `json:"adminNotes,omitempty"`
}

// SnapshotOf copies the notification-relevant fields of a booking.
func SnapshotOf(b *Booking) BookingSnapshot {
	return BookingSnapshot{
		BookingReference: b.BookingReference,
		UserName:         b.UserName,
		UserEmail:        b.UserEmail,
		UserPhone:        b.UserPhone,
		Title:            b.Title,
		Price:            b.Price,
		TravelDate:       b.TravelDate,
		Time:             b.Time,
		PickupLocation:   b.PickupLocation,
		DropLocation:     b.DropLocation,
		Status:           string(b.Status),
		AdminNotes:       b.AdminNotes,
	}
}

// PublicSnapshotOf copies the notification-relevant fields of a public booking.
func PublicSnapshotOf(b *PublicBooking) BookingSnapshot {
	return BookingSnapshot{
		BookingReference: b.BookingReference,
		UserName:         b.Name,
		UserEmail:        b.Email,
		UserPhone:        b.Phone,
		Title:            b.VehicleName,
		Price:            b.Price,
		TravelDate:       b.TravelDate,
		Time:             b.Time,
		PickupLocation:   b.PickupLocation,
		DropLocation:     b.DropLocation,
		Status:           string(b.Status),
	}
}

// NotificationPayload is the queued task body.
type NotificationPayload struct {
	Kind    NotificationKind `json:"kind"`
	To      string           `json:"to"`
	Booking *BookingSnapshot `json:"booking,omitempty"`
	OTP     string           `json:"otp,omitempty"`
	TTLMins int              `json:"ttlMins,omitempty"`
}
