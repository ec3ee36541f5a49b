package dirlock

import "github.com/VictoriaMetrics/metrics"

// Lock metrics, exposed through the default metrics set. Hosts that serve
// metrics can write them out with metrics.WritePrometheus.
var (
	acquireTotal    = metrics.NewCounter("dirlock_acquire_total")
	acquireTimeouts = metrics.NewCounter("dirlock_acquire_timeouts_total")
	releaseTotal    = metrics.NewCounter("dirlock_release_total")
	acquireWait     = metrics.NewHistogram("dirlock_acquire_wait_seconds")

	activeLocks = metrics.NewGauge("dirlock_active_locks", func() float64 {
		return float64(ActiveLocks())
	})
)
