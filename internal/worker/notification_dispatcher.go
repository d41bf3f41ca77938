package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-faster/errors"

	"github.com/polkiloo/webstudio/internal/adapter/telegram"
	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
)

const defaultBackoff = time.Second

// NotificationDispatcher delivers notifications in the background through a bounded queue.
type NotificationDispatcher struct {
	sender      telegram.Sender
	format      func(model.Notification) string
	workers     int
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs dispatcher worker pool.
func NewNotificationDispatcher(sender telegram.Sender, workers, queueSize, maxAttempts int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &NotificationDispatcher{
		sender:      sender,
		format:      telegram.Format,
		workers:     workers,
		maxAttempts: maxAttempts,
		backoff:     defaultBackoff,
		logger:      logger,
		jobs:        make(chan model.Notification, queueSize),
	}
}

// Notify enqueues a notification without waiting for delivery.
func (d *NotificationDispatcher) Notify(_ context.Context, n model.Notification) error {
	select {
	case d.jobs <- n:
		return nil
	default:
		d.logger.Warn("notification queue is full", slog.String("kind", string(n.Kind)), slog.String("order", n.OrderID))
		return domainErrors.ErrQueueFull
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop cancels in-flight deliveries and waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
	if pending := len(d.jobs); pending > 0 {
		d.logger.Warn("notifications dropped on shutdown", slog.Int("pending", pending))
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.jobs:
			d.deliver(ctx, n)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n model.Notification) {
	text := d.format(n)

	var err error
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err = d.sender.Send(ctx, text); err == nil {
			return
		}

		wait := d.backoff * time.Duration(attempt)
		var tm telegram.TooManyRequestsError
		if errors.As(err, &tm) {
			d.logger.Warn("telegram rate limited", slog.Duration("retry_after", tm.RetryAfter))
			wait = tm.RetryAfter
		}
		if attempt == d.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			d.logger.Warn("notification delivery canceled", slog.String("kind", string(n.Kind)), slog.String("order", n.OrderID))
			return
		case <-time.After(wait):
		}
	}

	d.logger.Error("notification delivery failed",
		slog.String("kind", string(n.Kind)),
		slog.String("order", n.OrderID),
		slog.Int("attempts", d.maxAttempts),
		slog.String("error", err.Error()),
	)
}
