package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fxsml/pipes"
	"github.com/fxsml/pipes/message"
)

// Write results used as metric label values.
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// Metrics holds the Prometheus collectors fed by metrics middleware.
type Metrics struct {
	// Writes counts writes by fitting, message kind and result.
	Writes *prometheus.CounterVec
	// Duration observes write latency, including all downstream fittings.
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the write metrics and registers them with reg.
// Collectors already registered by a previous call are reused.
// Pass nil to skip registration.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Writes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pipes",
				Subsystem: "fitting",
				Name:      "writes_total",
				Help:      "Total number of messages written to a fitting",
			},
			[]string{"fitting", "kind", "result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pipes",
				Subsystem: "fitting",
				Name:      "write_duration_seconds",
				Help:      "Time spent in a fitting write, including downstream fittings",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"fitting", "kind"},
		),
	}
	if reg == nil {
		return m, nil
	}

	writes, err := register(reg, m.Writes)
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, m.Duration)
	if err != nil {
		return nil, err
	}
	m.Writes, m.Duration = writes, duration
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("middleware: register metrics: %w", err)
	}
	return c, nil
}

// Middleware returns middleware recording writes under the fitting label.
func (m *Metrics) Middleware(fitting string) pipes.Middleware {
	return func(next pipes.WriteFunc) pipes.WriteFunc {
		return func(msg message.Envelope) bool {
			kind := msg.Envelope().Kind().String()
			start := time.Now()
			ok := next(msg)
			m.Duration.WithLabelValues(fitting, kind).Observe(time.Since(start).Seconds())
			result := ResultDelivered
			if !ok {
				result = ResultFailed
			}
			m.Writes.WithLabelValues(fitting, kind, result).Inc()
			return ok
		}
	}
}
