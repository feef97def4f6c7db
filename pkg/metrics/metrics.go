// Package metrics expone métricas Prometheus de las operaciones contra la
// pasarela de persistencia.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics métricas por operación de la pasarela (list_places,
// list_inventory, create_inventory, update_inventory, delete_inventory).
type GatewayMetrics struct {
	Operations *prometheus.CounterVec
	Failures   *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	registry   *prometheus.Registry
}

// NewGatewayMetrics crea y registra las métricas en el registry recibido.
func NewGatewayMetrics(registry *prometheus.Registry) (*GatewayMetrics, error) {
	m := &GatewayMetrics{
		registry: registry,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_operations_total",
			Help: "Total de operaciones contra la pasarela de persistencia",
		}, []string{"operation"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_failures_total",
			Help: "Total de operaciones de pasarela terminadas en fallo",
		}, []string{"operation"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_operation_duration_seconds",
			Help:    "Duración de las operaciones de pasarela",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	for _, c := range []prometheus.Collector{m.Operations, m.Failures, m.Latency} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("registrar métricas de pasarela: %w", err)
		}
	}
	return m, nil
}

// ObserveOperation registra una operación completa con su duración y resultado.
func (m *GatewayMetrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation).Inc()
	m.Latency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.Failures.WithLabelValues(operation).Inc()
	}
}
