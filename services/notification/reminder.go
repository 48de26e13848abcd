package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cabtour/metrics"
	"cabtour/models"
	"cabtour/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// reminderHour is the local hour, on the day before travel, reminders fire.
const reminderHour = 9

// TaskRemover deletes a scheduled task. *asynq.Inspector satisfies it.
type TaskRemover interface {
	DeleteTask(queue, id string) error
}

// EnableReminders makes confirmations also schedule a trip reminder for the
// day before travel. Cancellations delete the pending reminder via remover.
func (d *TaskDispatcher) EnableReminders(remover TaskRemover) *TaskDispatcher {
	d.reminders = true
	d.remover = remover
	return d
}

func reminderTaskID(reference string) string {
	return "trip-reminder:" + reference
}

// ReminderAt returns when to remind a traveller whose trip is on travelDate
// (YYYY-MM-DD). ok is false when the date does not parse or the moment has passed.
func ReminderAt(travelDate string, now time.Time) (time.Time, bool) {
	day, err := time.ParseInLocation("2006-01-02", travelDate, now.Location())
	if err != nil {
		return time.Time{}, false
	}
	at := day.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
	if !at.After(now) {
		return time.Time{}, false
	}
	return at, true
}

// NewReminderTask builds a trip reminder that becomes ready at fireAt. The
// task ID is derived from the booking reference so it can be cancelled.
func NewReminderTask(p models.NotificationPayload, fireAt time.Time) (*asynq.Task, error) {
	if p.Booking == nil {
		return nil, fmt.Errorf("reminder is missing booking data")
	}
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	return asynq.NewTask(TypeNotificationSend, body,
		asynq.MaxRetry(0),
		asynq.Queue(QueueName),
		asynq.Timeout(30*time.Second),
		asynq.ProcessAt(fireAt),
		asynq.TaskID(reminderTaskID(p.Booking.BookingReference)),
	), nil
}

func (d *TaskDispatcher) scheduleReminder(ctx context.Context, snap models.BookingSnapshot) {
	at, ok := ReminderAt(snap.TravelDate, d.now())
	if !ok || snap.UserEmail == "" {
		return
	}
	task, err := NewReminderTask(models.NotificationPayload{Kind: models.NotifyTripReminder, To: snap.UserEmail, Booking: &snap}, at)
	if err != nil {
		utils.GetLogger().Warn("trip reminder not built", zap.String("reference", snap.BookingReference), zap.Error(err))
		return
	}
	if _, err := d.client.EnqueueContext(ctx, task); err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
		metrics.IncNotification(string(models.NotifyTripReminder), "enqueue_failed")
		utils.GetLogger().Warn("trip reminder not scheduled", zap.String("reference", snap.BookingReference), zap.Error(err))
		return
	}
	metrics.IncNotification(string(models.NotifyTripReminder), "scheduled")
}

func (d *TaskDispatcher) cancelReminder(reference string) {
	if d.remover == nil {
		return
	}
	err := d.remover.DeleteTask(QueueName, reminderTaskID(reference))
	if err != nil && !errors.Is(err, asynq.ErrTaskNotFound) && !errors.Is(err, asynq.ErrQueueNotFound) {
		utils.GetLogger().Warn("trip reminder not removed", zap.String("reference", reference), zap.Error(err))
	}
}
