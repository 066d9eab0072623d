package notify

import (
	"context"
	"fmt"
	"time"

	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/metrics"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailSender is the part of resend.EmailsSvc the notifier needs.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendNotifier emails notifications to a fixed recipient through Resend.
type ResendNotifier struct {
	emails  emailSender
	from    string
	to      string
	timeout time.Duration
}

func NewResendNotifier(apiKey, from, to string, timeout time.Duration) *ResendNotifier {
	client := resend.NewClient(apiKey)
	return newResendNotifier(client.Emails, from, to, timeout)
}

func newResendNotifier(emails emailSender, from, to string, timeout time.Duration) *ResendNotifier {
	return &ResendNotifier{
		emails:  emails,
		from:    from,
		to:      to,
		timeout: timeout,
	}
}

// Notify sends msg, giving up once the configured timeout elapses.
func (n *ResendNotifier) Notify(ctx context.Context, msg Notification) (err error) {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(metrics.MeasureDuration(start))
	}()

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: msg.Subject,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
		// A unique reference keeps mail clients from threading unrelated requests.
		Headers: map[string]string{"X-Entity-Ref-ID": uuid.NewString()},
	}

	sent, err := n.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email sent", zap.String("id", sent.Id), zap.String("subject", msg.Subject))
	return nil
}
