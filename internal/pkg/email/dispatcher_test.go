package email

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (r *recordingSender) Send(to, subject, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("smtp unreachable")
	}
	r.sent = append(r.sent, to)
	return nil
}

func (r *recordingSender) delivered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sent...)
}

func TestDispatcherDeliversQueuedMessages(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := NewDispatcher(sender, 16)

	dispatcher.Enqueue("ana@example.com", "Asunto", "Cuerpo")
	dispatcher.Enqueue("bruno@example.com", "Asunto", "Cuerpo")
	dispatcher.Close()

	require.Len(t, sender.delivered(), 2)
	assert.Equal(t, []string{"ana@example.com", "bruno@example.com"}, sender.delivered())
}

func TestDispatcherSurvivesSenderFailures(t *testing.T) {
	sender := &recordingSender{fail: true}
	dispatcher := NewDispatcher(sender, 16)

	dispatcher.Enqueue("ana@example.com", "Asunto", "Cuerpo")
	dispatcher.Close()

	assert.Empty(t, sender.delivered())
}

func TestEnqueueAfterCloseIsDropped(t *testing.T) {
	sender := &recordingSender{}
	dispatcher := NewDispatcher(sender, 16)
	dispatcher.Close()

	dispatcher.Enqueue("ana@example.com", "Asunto", "Cuerpo")
	assert.Empty(t, sender.delivered())
}

func TestCloseIsIdempotent(t *testing.T) {
	dispatcher := NewDispatcher(&recordingSender{}, 16)
	dispatcher.Close()
	dispatcher.Close()
}
