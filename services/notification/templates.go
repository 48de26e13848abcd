package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"cabtour/models"
)

type emailTemplate struct {
	subject string
	body    *template.Template
}

const bookingDetails = `
<table cellpadding="4">
<tr><td><b>Reference</b></td><td>{{.Booking.BookingReference}}</td></tr>
<tr><td><b>Trip</b></td><td>{{.Booking.Title}}</td></tr>
<tr><td><b>Travel date</b></td><td>{{.Booking.TravelDate}}{{if .Booking.Time}} {{.Booking.Time}}{{end}}</td></tr>
{{if .Booking.PickupLocation}}<tr><td><b>Pickup</b></td><td>{{.Booking.PickupLocation}}</td></tr>{{end}}
{{if .Booking.DropLocation}}<tr><td><b>Drop</b></td><td>{{.Booking.DropLocation}}</td></tr>{{end}}
<tr><td><b>Fare</b></td><td>{{printf "%.2f" .Booking.Price}}</td></tr>
</table>
{{if .Booking.AdminNotes}}<p>Note from our team: {{.Booking.AdminNotes}}</p>{{end}}`

var templates = map[models.NotificationKind]emailTemplate{
	models.NotifyConfirmation: {
		subject: "Booking confirmed: {{.Booking.BookingReference}}",
		body:    template.Must(template.New("confirmed").Parse(`<p>Hi {{.Booking.UserName}},</p><p>Your booking is confirmed.</p>` + bookingDetails)),
	},
	models.NotifyTripStarted: {
		subject: "Your trip has started: {{.Booking.BookingReference}}",
		body:    template.Must(template.New("started").Parse(`<p>Hi {{.Booking.UserName}},</p><p>Your trip is under way. Have a safe journey.</p>` + bookingDetails)),
	},
	models.NotifyTripCompleted: {
		subject: "Trip completed: {{.Booking.BookingReference}}",
		body:    template.Must(template.New("completed").Parse(`<p>Hi {{.Booking.UserName}},</p><p>Your trip is complete. Thank you for travelling with us.</p>` + bookingDetails)),
	},
	models.NotifyCancellation: {
		subject: "Booking cancelled: {{.Booking.BookingReference}}",
		body:    template.Must(template.New("cancelled").Parse(`<p>Hi {{.Booking.UserName}},</p><p>Your booking has been cancelled.</p>` + bookingDetails)),
	},
	models.NotifyTripReminder: {
		subject: "Reminder: your trip is tomorrow ({{.Booking.BookingReference}})",
		body:    template.Must(template.New("reminder").Parse(`<p>Hi {{.Booking.UserName}},</p><p>This is a reminder that your trip is tomorrow.</p>` + bookingDetails)),
	},
	models.NotifyAdminNew: {
		subject: "New booking {{.Booking.BookingReference}}",
		body:    template.Must(template.New("adminNew").Parse(`<p>New booking from {{.Booking.UserName}} ({{.Booking.UserEmail}}{{if .Booking.UserPhone}}, {{.Booking.UserPhone}}{{end}}).</p>` + bookingDetails)),
	},
	models.NotifyAdminPublic: {
		subject: "New quick booking request {{.Booking.BookingReference}}",
		body:    template.Must(template.New("adminPublic").Parse(`<p>Quick booking request from {{.Booking.UserName}} ({{.Booking.UserPhone}}{{if .Booking.UserEmail}}, {{.Booking.UserEmail}}{{end}}).</p>` + bookingDetails)),
	},
	models.NotifyOTP: {
		subject: "Your login code",
		body:    template.Must(template.New("otp").Parse(`<p>Your login code is <b>{{.OTP}}</b>.</p><p>It expires in {{.TTLMins}} minutes. If you did not request it, ignore this email.</p>`)),
	},
}

// Render produces the subject and HTML body for a payload.
func Render(p models.NotificationPayload) (string, string, error) {
	tpl, ok := templates[p.Kind]
	if !ok {
		return "", "", fmt.Errorf("no template for notification kind %q", p.Kind)
	}
	if p.Kind != models.NotifyOTP && p.Booking == nil {
		return "", "", fmt.Errorf("notification %s is missing booking data", p.Kind)
	}

	subject, err := template.New("subject").Parse(tpl.subject)
	if err != nil {
		return "", "", err
	}
	var sb, bb bytes.Buffer
	if err := subject.Execute(&sb, p); err != nil {
		return "", "", fmt.Errorf("failed to render subject: %w", err)
	}
	if err := tpl.body.Execute(&bb, p); err != nil {
		return "", "", fmt.Errorf("failed to render body: %w", err)
	}
	return sb.String(), bb.String(), nil
}
