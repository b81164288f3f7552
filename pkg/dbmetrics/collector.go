package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/m04kA/SMC-FieldService/pkg/metrics"
)

// DefaultCollectInterval интервал сбора статистики пула соединений
const DefaultCollectInterval = 15 * time.Second

// PoolCollector периодически переносит sql.DBStats в метрики
type PoolCollector struct {
	db       *sql.DB
	metrics  *metrics.Metrics
	interval time.Duration
}

// NewPoolCollector создаёт коллектор статистики пула
func NewPoolCollector(db *sql.DB, m *metrics.Metrics, interval time.Duration) *PoolCollector {
	if interval <= 0 {
		interval = DefaultCollectInterval
	}
	return &PoolCollector{db: db, metrics: m, interval: interval}
}

// Run собирает статистику до закрытия stopCh
func (c *PoolCollector) Run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Collect()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			c.Collect()
		}
	}
}

// Collect снимает текущую статистику
func (c *PoolCollector) Collect() {
	stats := c.db.Stats()
	c.metrics.DBOpenConnections.WithLabelValues().Set(float64(stats.OpenConnections))
	c.metrics.DBInUse.WithLabelValues().Set(float64(stats.InUse))
	c.metrics.DBIdle.WithLabelValues().Set(float64(stats.Idle))
	c.metrics.DBWaitCount.WithLabelValues().Set(float64(stats.WaitCount))
}
