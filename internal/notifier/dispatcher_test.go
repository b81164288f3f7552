package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldService/pkg/logger"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []Message
	failures int // сколько первых вызовов завершатся ошибкой
	calls    int
	block    chan struct{}
}

func (f *fakeSender) Send(_ context.Context, recipient, message string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return errors.New("upstream unavailable")
	}
	f.sent = append(f.sent, Message{Recipient: recipient, Text: message})
	return nil
}

type fakeMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (f *fakeMetrics) ObserveNotification(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[status]++
}

func (f *fakeMetrics) get(status string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[status]
}

func stop(t *testing.T, d *Dispatcher) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Stop(ctx))
}

func TestDispatcher_Delivers(t *testing.T) {
	sender := &fakeSender{}
	m := &fakeMetrics{counts: map[string]int{}}
	d := NewDispatcher(Config{Workers: 2, QueueSize: 10}, sender, m, logger.Nop())

	d.Notify("+51999000111", "hola")
	d.Notify("+51999000222", "adios")
	stop(t, d)

	assert.Len(t, sender.sent, 2)
	assert.Equal(t, 2, m.get(StatusSent))
}

func TestDispatcher_RetriesOnce(t *testing.T) {
	t.Run("second attempt succeeds", func(t *testing.T) {
		sender := &fakeSender{failures: 1}
		m := &fakeMetrics{counts: map[string]int{}}
		d := NewDispatcher(Config{Workers: 1, QueueSize: 1}, sender, m, logger.Nop())

		d.Notify("+51999000111", "hola")
		stop(t, d)

		assert.Equal(t, 2, sender.calls)
		assert.Len(t, sender.sent, 1)
		assert.Equal(t, 1, m.get(StatusSent))
	})

	t.Run("gives up after retry", func(t *testing.T) {
		sender := &fakeSender{failures: 5}
		m := &fakeMetrics{counts: map[string]int{}}
		d := NewDispatcher(Config{Workers: 1, QueueSize: 1}, sender, m, logger.Nop())

		d.Notify("+51999000111", "hola")
		stop(t, d)

		assert.Equal(t, 2, sender.calls)
		assert.Empty(t, sender.sent)
		assert.Equal(t, 1, m.get(StatusFailed))
	})
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sender := &fakeSender{block: make(chan struct{})}
	m := &fakeMetrics{counts: map[string]int{}}
	d := NewDispatcher(Config{Workers: 1, QueueSize: 1}, sender, m, logger.Nop())

	// первый уходит воркеру и блокируется, второй занимает очередь
	require.NoError(t, d.Enqueue("+1", "a"))
	require.Eventually(t, func() bool { return len(d.queue) == 0 }, time.Second, time.Millisecond)
	require.NoError(t, d.Enqueue("+2", "b"))

	assert.ErrorIs(t, d.Enqueue("+3", "c"), ErrQueueFull)
	assert.Equal(t, 1, m.get(StatusDropped))

	close(sender.block)
	stop(t, d)
	assert.Len(t, sender.sent, 2)
}

func TestDispatcher_SkipsEmptyRecipientAndRejectsAfterStop(t *testing.T) {
	sender := &fakeSender{}
	m := &fakeMetrics{counts: map[string]int{}}
	d := NewDispatcher(Config{}, sender, m, logger.Nop())

	assert.NoError(t, d.Enqueue("  ", "hola"))
	assert.Equal(t, 1, m.get(StatusSkipped))

	stop(t, d)
	assert.ErrorIs(t, d.Enqueue("+1", "hola"), ErrStopped)
	assert.Empty(t, sender.sent)
}

func TestMessages(t *testing.T) {
	assert.Equal(t,
		"¡Hola! Se te ha asignado una nueva tarea: Fibra óptica. Revisa la app para más detalles.",
		TechnicianAssigned("Fibra óptica"))

	at := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	assert.Equal(t,
		"¡Hola Ana Rojas! Tu instalación de Antena ha sido completada con éxito. Fecha de finalización: 2026-03-10 14:05:00.",
		InstallationCompleted("Ana Rojas", "Antena", at))
}
