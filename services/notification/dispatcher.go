package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cabtour/metrics"
	"cabtour/models"
	"cabtour/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeNotificationSend is the asynq task type carrying a NotificationPayload.
const TypeNotificationSend = "notification:send"

// QueueName is the asynq queue notifications are enqueued on.
const QueueName = "notifications"

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskDispatcher implements Notifier by enqueueing one task per message.
// Tasks are not retried: delivery is at most once.
type TaskDispatcher struct {
	client     Enqueuer
	adminEmail string

	reminders bool
	remover   TaskRemover
	clock     func() time.Time
}

// NewTaskDispatcher returns a dispatcher. adminEmail may be empty, in which
// case admin alerts are skipped.
func NewTaskDispatcher(client Enqueuer, adminEmail string) *TaskDispatcher {
	return &TaskDispatcher{client: client, adminEmail: adminEmail}
}

// NewTask builds the asynq task for payload.
func NewTask(p models.NotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notification payload: %w", err)
	}
	return asynq.NewTask(TypeNotificationSend, body,
		asynq.MaxRetry(0),
		asynq.Queue(QueueName),
		asynq.Timeout(30*time.Second),
	), nil
}

func (d *TaskDispatcher) now() time.Time {
	if d.clock != nil {
		return d.clock()
	}
	return time.Now()
}

func (d *TaskDispatcher) enqueue(ctx context.Context, p models.NotificationPayload) error {
	if p.To == "" {
		return fmt.Errorf("notification %s has no recipient", p.Kind)
	}
	task, err := NewTask(p)
	if err != nil {
		return err
	}
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		metrics.IncNotification(string(p.Kind), "enqueue_failed")
		return fmt.Errorf("failed to enqueue %s notification: %w", p.Kind, err)
	}
	metrics.IncNotification(string(p.Kind), "enqueued")
	utils.GetLogger().Debug("notification enqueued",
		zap.String("kind", string(p.Kind)),
		zap.String("taskId", info.ID),
	)
	return nil
}

func (d *TaskDispatcher) toCustomer(ctx context.Context, kind models.NotificationKind, snap models.BookingSnapshot) error {
	return d.enqueue(ctx, models.NotificationPayload{Kind: kind, To: snap.UserEmail, Booking: &snap})
}

func (d *TaskDispatcher) toAdmin(ctx context.Context, kind models.NotificationKind, snap models.BookingSnapshot) error {
	if d.adminEmail == "" {
		return nil
	}
	return d.enqueue(ctx, models.NotificationPayload{Kind: kind, To: d.adminEmail, Booking: &snap})
}

func (d *TaskDispatcher) SendConfirmation(ctx context.Context, snap models.BookingSnapshot) error {
	if err := d.toCustomer(ctx, models.NotifyConfirmation, snap); err != nil {
		return err
	}
	if d.reminders {
		d.scheduleReminder(ctx, snap)
	}
	return nil
}

func (d *TaskDispatcher) SendTripStarted(ctx context.Context, snap models.BookingSnapshot) error {
	return d.toCustomer(ctx, models.NotifyTripStarted, snap)
}

func (d *TaskDispatcher) SendTripCompleted(ctx context.Context, snap models.BookingSnapshot) error {
	return d.toCustomer(ctx, models.NotifyTripCompleted, snap)
}

func (d *TaskDispatcher) SendCancellation(ctx context.Context, snap models.BookingSnapshot) error {
	if d.reminders {
		d.cancelReminder(snap.BookingReference)
	}
	return d.toCustomer(ctx, models.NotifyCancellation, snap)
}

func (d *TaskDispatcher) NotifyAdminNewBooking(ctx context.Context, snap models.BookingSnapshot) error {
	return d.toAdmin(ctx, models.NotifyAdminNew, snap)
}

func (d *TaskDispatcher) NotifyAdminPublicBooking(ctx context.Context, snap models.BookingSnapshot) error {
	return d.toAdmin(ctx, models.NotifyAdminPublic, snap)
}

func (d *TaskDispatcher) SendLoginOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	return d.enqueue(ctx, models.NotificationPayload{
		Kind:    models.NotifyOTP,
		To:      email,
		OTP:     code,
		TTLMins: int(ttl / time.Minute),
	})
}
