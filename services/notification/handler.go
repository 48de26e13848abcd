package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"cabtour/metrics"
	"cabtour/models"
	"cabtour/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskHandler renders and mails queued notifications.
type TaskHandler struct {
	Mailer Mailer
}

// ProcessTask implements asynq.Handler.
func (h *TaskHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("invalid notification payload", zap.Error(err))
		return fmt.Errorf("invalid notification payload: %v: %w", err, asynq.SkipRetry)
	}

	subject, body, err := Render(p)
	if err != nil {
		metrics.IncNotification(string(p.Kind), "failed")
		logger.Error("failed to render notification", zap.String("kind", string(p.Kind)), zap.Error(err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	if err := h.Mailer.Send(ctx, p.To, subject, body); err != nil {
		metrics.IncNotification(string(p.Kind), "failed")
		logger.Warn("notification delivery failed",
			zap.String("kind", string(p.Kind)),
			zap.String("to", p.To),
			zap.Error(err),
		)
		return err
	}

	metrics.IncNotification(string(p.Kind), "sent")
	logger.Info("notification sent", zap.String("kind", string(p.Kind)), zap.String("to", p.To))
	return nil
}
