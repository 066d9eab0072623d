package notify

import (
	"context"

	"portfolio-api/pkg/logger"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log instead of sending them.
// It is used when no email provider is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Notification) error {
	logger.Info("Email delivery disabled, logging notification",
		zap.String("subject", msg.Subject),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("body", msg.Text),
	)
	return nil
}
