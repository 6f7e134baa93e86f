package email

import (
	"sync"

	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// message is one queued delivery
type message struct {
	to      string
	subject string
	body    string
}

// Dispatcher queues messages on a buffered channel and delivers them from a
// background worker. Delivery is best effort; failures are logged and never
// propagate to the caller.
type Dispatcher struct {
	sender Sender
	queue  chan message
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher starts a dispatcher with the given queue capacity
func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}

	d := &Dispatcher{
		sender: sender,
		queue:  make(chan message, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for msg := range d.queue {
		if err := d.sender.Send(msg.to, msg.subject, msg.body); err != nil {
			logger.Error().
				Err(err).
				Str("to", msg.to).
				Str("subject", msg.subject).
				Msg("Failed to deliver notification email")
		}
	}
}

// Enqueue queues one message for delivery. When the queue is full or the
// dispatcher is closed the message is dropped with a warning.
func (d *Dispatcher) Enqueue(to, subject, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		logger.Warn().Str("to", to).Msg("Email dispatcher closed, dropping notification")
		return
	}

	select {
	case d.queue <- message{to: to, subject: subject, body: body}:
	default:
		logger.Warn().Str("to", to).Msg("Email queue full, dropping notification")
	}
}

// Close stops accepting new messages and waits for queued ones to drain
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	close(d.queue)
	d.wg.Wait()
}
