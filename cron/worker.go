package cron

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"cabtour/services/notification"
	"cabtour/utils"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const monitorInterval = 10 * time.Second

// NotificationWorker consumes the notification queue.
type NotificationWorker struct {
	srv     *asynq.Server
	mux     *asynq.ServeMux
	monitor *RedisMonitor
	cancel  context.CancelFunc
}

// NewMux routes notification tasks to handler.
func NewMux(handler asynq.Handler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(notification.TypeNotificationSend, handler)
	return mux
}

// NewNotificationWorker builds a worker on the queue database described by
// opt. monitorClient may be nil to skip connection monitoring.
func NewNotificationWorker(opt asynq.RedisClientOpt, handler asynq.Handler, concurrency int, monitorClient redis.Cmdable) *NotificationWorker {
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{notification.QueueName: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			utils.GetLogger().Warn("notification task failed", zap.String("type", task.Type()), zap.Error(err))
		}),
		ShutdownTimeout: 10 * time.Second,
	})
	w := &NotificationWorker{srv: srv, mux: NewMux(handler)}
	if monitorClient != nil {
		w.monitor = NewRedisMonitor(monitorClient)
	}
	return w
}

// Start runs the worker in the background, retrying startup with backoff.
func (w *NotificationWorker) Start(ctx context.Context) error {
	ctx, w.cancel = context.WithCancel(ctx)
	if w.monitor != nil {
		go w.monitor.Run(ctx, monitorInterval)
	}

	logger := utils.GetLogger()
	const maxAttempts = 5
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = w.srv.Start(w.mux); err == nil {
			logger.Info("Notification worker started", zap.String("queue", notification.QueueName))
			return nil
		}
		logger.Warn("Notification worker failed to start",
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", maxAttempts),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*2) * time.Second):
		}
	}
	return fmt.Errorf("notification worker did not start after %d attempts: %w", maxAttempts, err)
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	if w.cancel != nil {
		w.cancel()
	}
	w.srv.Shutdown()
}

// Healthy reports the last Redis probe; true when monitoring is off.
func (w *NotificationWorker) Healthy() bool {
	return w.monitor == nil || w.monitor.Healthy()
}

// RedisMonitor pings Redis periodically to detect failures at runtime.
type RedisMonitor struct {
	client   redis.Cmdable
	healthy  atomic.Bool
	failures atomic.Int64
}

func NewRedisMonitor(client redis.Cmdable) *RedisMonitor {
	m := &RedisMonitor{client: client}
	m.healthy.Store(true)
	return m
}

// Probe pings once and records the outcome.
func (m *RedisMonitor) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := m.client.Ping(ctx).Err(); err != nil {
		if m.healthy.Swap(false) {
			utils.GetLogger().Warn("Redis connection lost", zap.Error(err))
		}
		m.failures.Add(1)
		return false
	}
	if !m.healthy.Swap(true) {
		utils.GetLogger().Info("Redis connection restored")
	}
	return true
}

// Run probes every interval until ctx is done.
func (m *RedisMonitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		m.Probe(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *RedisMonitor) Healthy() bool { return m.healthy.Load() }

// Failures is the number of failed probes so far.
func (m *RedisMonitor) Failures() int64 { return m.failures.Load() }
