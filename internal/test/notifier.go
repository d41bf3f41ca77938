package test

import (
	"context"
	"sync"

	"github.com/polkiloo/webstudio/internal/domain/model"
)

// NotifierRecorder captures notifications emitted by use cases.
type NotifierRecorder struct {
	Err error

	mu            sync.Mutex
	notifications []model.Notification
}

// Notify records the notification and returns the configured error.
func (r *NotifierRecorder) Notify(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
	return r.Err
}

// Notifications returns a snapshot of recorded notifications.
func (r *NotifierRecorder) Notifications() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notification(nil), r.notifications...)
}

// Count returns how many notifications of kind were recorded.
func (r *NotifierRecorder) Count(kind model.NotificationKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for _, item := range r.notifications {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

// SenderStub records delivered texts and replays scripted errors.
type SenderStub struct {
	Errors []error

	mu    sync.Mutex
	calls int
	sent  []string
}

// Send returns the next scripted error; texts are recorded only on success.
func (s *SenderStub) Send(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	call := s.calls
	s.calls++
	if call < len(s.Errors) && s.Errors[call] != nil {
		return s.Errors[call]
	}
	s.sent = append(s.sent, text)
	return nil
}

// Sent returns successfully delivered texts.
func (s *SenderStub) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

// Calls returns the number of Send invocations.
func (s *SenderStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
