package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/webstudio/internal/adapter/telegram"
	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	testhelpers "github.com/polkiloo/webstudio/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewNotificationDispatcherDefaults(t *testing.T) {
	d := NewNotificationDispatcher(&testhelpers.SenderStub{}, 0, 0, 0, testLogger())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if cap(d.jobs) != 1 {
		t.Fatalf("expected queue size default to 1, got %d", cap(d.jobs))
	}
	if d.maxAttempts != 1 {
		t.Fatalf("expected attempts default to 1, got %d", d.maxAttempts)
	}
}

func TestDispatcherDeliversNotifications(t *testing.T) {
	sender := &testhelpers.SenderStub{}
	d := NewNotificationDispatcher(sender, 2, 8, 1, testLogger())
	d.Start(context.Background())
	defer d.Stop()

	for _, kind := range []model.NotificationKind{model.NotificationOrderCreated, model.NotificationPrepaymentReceived} {
		if err := d.Notify(context.Background(), model.Notification{Kind: kind, OrderID: "ord-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	waitFor(t, time.Second, func() bool { return len(sender.Sent()) == 2 })
	for _, text := range sender.Sent() {
		if !strings.Contains(text, "ord-1") {
			t.Fatalf("expected formatted message, got %q", text)
		}
	}
}

func TestDispatcherRetriesAfterRateLimit(t *testing.T) {
	sender := &testhelpers.SenderStub{Errors: []error{telegram.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}}}
	d := NewNotificationDispatcher(sender, 1, 1, 3, testLogger())
	d.Start(context.Background())
	defer d.Stop()

	if err := d.Notify(context.Background(), model.Notification{Kind: model.NotificationOrderFullyPaid}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waitFor(t, time.Second, func() bool { return len(sender.Sent()) == 1 })
	if sender.Calls() != 2 {
		t.Fatalf("expected 2 attempts, got %d", sender.Calls())
	}
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	boom := errors.New("boom")
	sender := &testhelpers.SenderStub{Errors: []error{boom, boom, boom}}
	d := NewNotificationDispatcher(sender, 1, 1, 2, testLogger())
	d.backoff = time.Millisecond
	d.Start(context.Background())

	if err := d.Notify(context.Background(), model.Notification{Kind: model.NotificationInvoicePaid}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	waitFor(t, time.Second, func() bool { return sender.Calls() == 2 })
	time.Sleep(20 * time.Millisecond)
	d.Stop()

	if sender.Calls() != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", sender.Calls())
	}
	if len(sender.Sent()) != 0 {
		t.Fatalf("expected nothing delivered")
	}
}

func TestDispatcherQueueFull(t *testing.T) {
	d := NewNotificationDispatcher(&testhelpers.SenderStub{}, 1, 1, 1, testLogger())

	if err := d.Notify(context.Background(), model.Notification{Kind: model.NotificationContactRequest}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Notify(context.Background(), model.Notification{Kind: model.NotificationContactRequest}); !errors.Is(err, domainErrors.ErrQueueFull) {
		t.Fatalf("expected queue full, got %v", err)
	}
}

func TestDispatcherStopInterruptsBackoff(t *testing.T) {
	sender := &testhelpers.SenderStub{Errors: []error{telegram.TooManyRequestsError{RetryAfter: time.Hour}}}
	d := NewNotificationDispatcher(sender, 1, 1, 3, testLogger())
	d.Start(context.Background())
	d.Start(context.Background())

	if err := d.Notify(context.Background(), model.Notification{Kind: model.NotificationOrderCreated}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitFor(t, time.Second, func() bool { return sender.Calls() == 1 })

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected stop to interrupt retry wait")
	}
}
