package notifier

import (
	"context"
	"fmt"
	"time"

	"fjacquet/autokit/internal/logging"
	"fjacquet/autokit/internal/models"
)

// Notifier evaluates a condition and sends a rendered notification when
// it holds. No queuing and no retry: a transport failure is surfaced to
// the operator for manual re-run.
type Notifier struct {
	sender Sender
	logger logging.Logger
}

// New creates a Notifier backed by the given sender.
func New(sender Sender, logger logging.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: logger,
	}
}

// Notify evaluates the condition expression once. When it holds, the
// notification is rendered and sent; the boolean reports whether a send
// happened. A false condition is not an error.
func (n *Notifier) Notify(ctx context.Context, condition string, notification models.Notification) (bool, error) {
	met, err := EvaluateCondition(condition)
	if err != nil {
		return false, err
	}
	if !met {
		n.logger.WithField(logging.FieldCondition, condition).Info("Condition not met, no notification sent")
		return false, nil
	}

	if len(notification.Recipients) == 0 {
		return false, fmt.Errorf("no recipients configured")
	}

	subject, body, err := RenderMessage(notification, time.Now())
	if err != nil {
		return false, err
	}

	email := Email{
		Recipients: notification.Recipients,
		Subject:    subject,
		Body:       body,
		HTML:       notification.HTML,
	}
	if err := n.sender.Send(ctx, email); err != nil {
		n.logger.WithError(err).WithField(logging.FieldRecipient, notification.Recipients).Error("Failed to send notification")
		return false, err
	}

	n.logger.WithFields(
		logging.Field{Key: logging.FieldCondition, Value: condition},
		logging.Field{Key: logging.FieldRecipient, Value: notification.Recipients},
	).Info("Notification sent")
	return true, nil
}
