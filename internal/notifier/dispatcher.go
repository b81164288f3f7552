// Package notifier асинхронная доставка уведомлений после фиксации транзакций.
// Ошибки доставки только логируются и никогда не влияют на результат бизнес-операции.
package notifier

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultWorkers     = 2
	DefaultQueueSize   = 100
	DefaultSendTimeout = 10 * time.Second
	DefaultRetryDelay  = 2 * time.Second
)

// Статусы для метрик
const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusDropped = "dropped"
	StatusSkipped = "skipped"
)

// Message уведомление в очереди
type Message struct {
	ID        string
	Recipient string
	Text      string
}

// Config параметры диспетчера
type Config struct {
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
	RetryDelay  time.Duration
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.QueueSize <= 0 {
		c.QueueSize = DefaultQueueSize
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultSendTimeout
	}
	if c.RetryDelay < 0 {
		c.RetryDelay = 0
	}
	return c
}

// Dispatcher пул воркеров поверх буферизированной очереди
// Каждое сообщение отправляется не более двух раз (одна повторная попытка)
type Dispatcher struct {
	cfg     Config
	sender  Sender
	metrics Metrics
	logger  Logger

	queue chan Message
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher создаёт диспетчер и запускает воркеры
// metrics может быть nil
func NewDispatcher(cfg Config, sender Sender, metrics Metrics, logger Logger) *Dispatcher {
	cfg = cfg.withDefaults()

	d := &Dispatcher{
		cfg:     cfg,
		sender:  sender,
		metrics: metrics,
		logger:  logger,
		queue:   make(chan Message, cfg.QueueSize),
	}

	for i := 0; i < cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Notify ставит сообщение в очередь и сразу возвращает управление
// Пустой получатель не ошибка: у клиента может не быть телефона
func (d *Dispatcher) Notify(recipient, text string) {
	if err := d.Enqueue(recipient, text); err != nil {
		d.logger.Warn("Notify: message to %s not queued: %v", recipient, err)
	}
}

// Enqueue как Notify, но возвращает причину, по которой сообщение не попало в очередь
func (d *Dispatcher) Enqueue(recipient, text string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		d.observe(StatusSkipped)
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.observe(StatusDropped)
		return ErrStopped
	}

	msg := Message{ID: uuid.NewString(), Recipient: recipient, Text: text}

	select {
	case d.queue <- msg:
		return nil
	default:
		d.observe(StatusDropped)
		return ErrQueueFull
	}
}

// Stop закрывает очередь и ждёт, пока воркеры разберут оставшиеся сообщения
// или истечёт ctx
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *Dispatcher) deliver(msg Message) {
	err := d.send(msg)
	if err != nil {
		d.logger.Warn("deliver: message id=%s to %s failed, retrying: %v", msg.ID, msg.Recipient, err)
		time.Sleep(d.cfg.RetryDelay)
		err = d.send(msg)
	}

	if err != nil {
		d.logger.Error("deliver: message id=%s to %s dropped after retry: %v", msg.ID, msg.Recipient, err)
		d.observe(StatusFailed)
		return
	}

	d.logger.Info("deliver: message id=%s sent to %s", msg.ID, msg.Recipient)
	d.observe(StatusSent)
}

func (d *Dispatcher) send(msg Message) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.SendTimeout)
	defer cancel()
	return d.sender.Send(ctx, msg.Recipient, msg.Text)
}

func (d *Dispatcher) observe(status string) {
	if d.metrics != nil {
		d.metrics.ObserveNotification(status)
	}
}
