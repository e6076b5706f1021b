package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	queueSize    = 64
	maxAttempts  = 2
	retryBackoff = time.Second
	sendTimeout  = 30 * time.Second
)

// Dispatcher decouples request handling from email delivery. Handlers
// enqueue notifications and get back only the guarantee "enqueued"; a
// single worker drains the queue, retrying each message once on
// failure. Close flushes whatever is still queued before returning.
type Dispatcher struct {
	mailer Mailer
	log    *logrus.Logger

	queue chan Message
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts the delivery worker.
func NewDispatcher(m Mailer, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: m,
		log:    log,
		queue:  make(chan Message, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Enqueue submits a message for asynchronous delivery. It never blocks:
// when the queue is full or the dispatcher is closed the message is
// dropped and logged.
func (d *Dispatcher) Enqueue(msg Message) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.log.WithField("to", msg.To).Warn("mail dispatcher closed, dropping message")
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		d.log.WithField("to", msg.To).Warn("mail queue full, dropping message")
		return false
	}
}

// Send delivers a message synchronously with the same retry policy the
// worker uses. Used where the caller must observe delivery failure.
func (d *Dispatcher) Send(ctx context.Context, msg Message) error {
	return d.deliver(ctx, msg)
}

// Close stops accepting messages, drains the queue and waits for the
// worker to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for msg := range d.queue {
		if err := d.deliver(context.Background(), msg); err != nil {
			d.log.WithError(err).WithFields(logrus.Fields{
				"to":      msg.To,
				"subject": msg.Subject,
			}).Error("email delivery failed")
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := d.mailer.Send(sendCtx, msg)
		cancel()

		if err == nil {
			d.log.WithFields(logrus.Fields{
				"to":      msg.To,
				"attempt": attempt,
			}).Info("email sent")
			return nil
		}

		lastErr = err
		d.log.WithError(err).WithFields(logrus.Fields{
			"to":      msg.To,
			"attempt": attempt,
		}).Warn("email attempt failed")

		if attempt < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}

	return lastErr
}
