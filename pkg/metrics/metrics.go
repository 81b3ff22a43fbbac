package metrics

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	mu       sync.RWMutex
	enabled  bool
	registry *prometheus.Registry

	workflowOps      *prometheus.CounterVec
	workflowDuration *prometheus.HistogramVec
	jobRuns          *prometheus.CounterVec
	jobItems         *prometheus.CounterVec
	tankDrift        *prometheus.GaugeVec
)

// Create registers the collectors under namespace. Until it is called every
// recording function is a no-op.
func Create(namespace string) error {
	mu.Lock()
	defer mu.Unlock()

	reg := prometheus.NewRegistry()
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "workflow",
		Name:      "operations_total",
		Help:      "Balance workflow calls by outcome.",
	}, []string{"workflow", "op", "result"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "workflow",
		Name:      "duration_seconds",
		Help:      "Balance workflow latency including the atomic group.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"workflow", "op"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "job",
		Name:      "runs_total",
		Help:      "Job runs by outcome.",
	}, []string{"job", "result"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "job",
		Name:      "items_total",
		Help:      "Items processed by jobs by outcome.",
	}, []string{"job", "result"})
	drift := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tank",
		Name:      "drift_litres",
		Help:      "Stored level minus derived level found by the last reconciliation.",
	}, []string{"tank"})

	for _, c := range []prometheus.Collector{ops, duration, runs, items, drift} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	registry = reg
	workflowOps, workflowDuration, jobRuns, jobItems, tankDrift = ops, duration, runs, items, drift
	enabled = true
	return nil
}

// Handler serves the registry in the prometheus text format.
func Handler() http.Handler {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Result classifies err for the result label. Policy rejections are kept
// apart from failures.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrInsufficientFuel),
		errors.Is(err, domain.ErrQuotaExceeded):
		return ResultRejected
	}
	return ResultError
}

func ObserveWorkflow(workflow, op string, start time.Time, err error) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	workflowOps.WithLabelValues(workflow, op, Result(err)).Inc()
	workflowDuration.WithLabelValues(workflow, op).Observe(time.Since(start).Seconds())
}

func JobRun(job string, err error) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	jobRuns.WithLabelValues(job, Result(err)).Inc()
}

func JobItem(job string, err error) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	jobItems.WithLabelValues(job, Result(err)).Inc()
}

func SetTankDrift(tankID string, litres float64) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	tankDrift.WithLabelValues(tankID).Set(litres)
	if litres != 0 {
		zap.L().Debug("tank drift recorded", zap.String("tank", tankID), zap.Float64("litres", litres))
	}
}
