package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Order pipeline counters. Exposed through the health endpoint.
var (
	TurnsProcessed  Counter
	OrdersFinalized Counter
	StockConflicts  Counter
	StorageFailures Counter
)

// Snapshot returns the current counter values keyed by name.
func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"turns_processed":  TurnsProcessed.Load(),
		"orders_finalized": OrdersFinalized.Load(),
		"stock_conflicts":  StockConflicts.Load(),
		"storage_failures": StorageFailures.Load(),
	}
}
