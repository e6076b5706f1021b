package mailer

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

type fakeMailer struct {
	mu        sync.Mutex
	calls     int
	failFirst int
	delivered []Message
}

func (f *fakeMailer) Send(_ context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.calls <= f.failFirst {
		return errors.New("connection reset")
	}

	f.delivered = append(f.delivered, msg)
	return nil
}

func (f *fakeMailer) Close() error { return nil }

func (f *fakeMailer) stats() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls, len(f.delivered)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDispatcherDeliversEnqueuedMessages(t *testing.T) {
	fake := &fakeMailer{}
	d := NewDispatcher(fake, quietLogger())

	for i := 0; i < 5; i++ {
		if !d.Enqueue(Message{To: "user@x.com", Subject: "hi"}) {
			t.Fatalf("enqueue %d rejected", i)
		}
	}

	d.Close()

	if _, delivered := fake.stats(); delivered != 5 {
		t.Fatalf("delivered %d messages, want 5", delivered)
	}
}

func TestDispatcherRetriesOnce(t *testing.T) {
	fake := &fakeMailer{failFirst: 1}
	d := NewDispatcher(fake, quietLogger())

	d.Enqueue(Message{To: "user@x.com"})
	d.Close()

	calls, delivered := fake.stats()
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if delivered != 1 {
		t.Fatalf("expected message delivered on retry, got %d", delivered)
	}
}

func TestDispatcherGivesUpAfterMaxAttempts(t *testing.T) {
	fake := &fakeMailer{failFirst: 10}
	d := NewDispatcher(fake, quietLogger())

	d.Enqueue(Message{To: "user@x.com"})
	d.Close()

	calls, delivered := fake.stats()
	if calls != maxAttempts {
		t.Fatalf("expected %d attempts, got %d", maxAttempts, calls)
	}
	if delivered != 0 {
		t.Fatalf("expected no delivery, got %d", delivered)
	}
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher(&fakeMailer{}, quietLogger())
	d.Close()

	if d.Enqueue(Message{To: "user@x.com"}) {
		t.Fatal("enqueue after close should be rejected")
	}

	// Close is idempotent.
	d.Close()
}

func TestDispatcherSynchronousSend(t *testing.T) {
	fake := &fakeMailer{failFirst: maxAttempts}
	d := NewDispatcher(fake, quietLogger())
	defer d.Close()

	err := d.Send(context.Background(), Message{To: "admin@x.com"})
	if err == nil {
		t.Fatal("expected synchronous send to surface the failure")
	}
}
