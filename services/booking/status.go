package booking

import (
	"fmt"
	"strings"

	"cabtour/models"
)

// Actor is who asks for a status change.
type Actor string

const (
	ActorAdmin    Actor = "admin"
	ActorCustomer Actor = "customer"
)

// adminTransitions is the full lifecycle table operated by admins.
var adminTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// customerTransitions: customers may only withdraw a booking nobody has acted on.
var customerTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending: {models.StatusCancelled},
}

// TransitionError reports a status change the lifecycle does not allow.
type TransitionError struct {
	Actor Actor
	From  models.BookingStatus
	To    models.BookingStatus
}

func (e *TransitionError) Error() string {
	if e.Actor == ActorCustomer && e.To == models.StatusCancelled {
		return "only pending bookings can be cancelled"
	}
	if e.From.IsTerminal() {
		return fmt.Sprintf("booking is already %s", e.From)
	}
	return fmt.Sprintf("cannot move booking from %s to %s", e.From, e.To)
}

// CanTransition validates from -> to for actor and returns a *TransitionError
// when the table forbids it.
func CanTransition(actor Actor, from, to models.BookingStatus) error {
	table := adminTransitions
	if actor == ActorCustomer {
		table = customerTransitions
	}
	for _, allowed := range table[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{Actor: actor, From: from, To: to}
}

// AllowedNext lists the statuses actor may move a booking to from status.
func AllowedNext(actor Actor, status models.BookingStatus) []models.BookingStatus {
	table := adminTransitions
	if actor == ActorCustomer {
		table = customerTransitions
	}
	return append([]models.BookingStatus(nil), table[status]...)
}

// ParseStatus converts user input into a lifecycle status.
func ParseStatus(s string) (models.BookingStatus, error) {
	status := models.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if status == "in_progress" || status == "inprogress" {
		status = models.StatusInProgress
	}
	if !status.IsKnown() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
