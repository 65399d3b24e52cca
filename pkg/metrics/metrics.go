package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	gatewayRequestsTotal   *prometheus.CounterVec
	gatewayRequestDuration *prometheus.HistogramVec

	paymentOutcomesTotal    *prometheus.CounterVec
	enrichmentDegradedTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		gatewayRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gateway_requests_total",
			Help:        "Total number of calls to resource gateways",
			ConstLabels: constLabels,
		}, []string{"gateway", "operation", "result"}),
		gatewayRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "gateway_request_duration_seconds",
			Help:        "Resource gateway call latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"gateway", "operation"}),
		paymentOutcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_payment_outcomes_total",
			Help:        "Resolved payment confirmations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		enrichmentDegradedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "staff_enrichment_degraded_total",
			Help:        "Units dropped or degraded while enriching staff bookings",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.gatewayRequestsTotal,
		m.gatewayRequestDuration,
		m.paymentOutcomesTotal,
		m.enrichmentDegradedTotal,
	)

	return m
}

// ObserveHTTP фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveGateway фиксирует вызов внешнего ресурсного сервиса
func (m *Metrics) ObserveGateway(gateway, operation, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.gatewayRequestsTotal.WithLabelValues(gateway, operation, result).Inc()
	m.gatewayRequestDuration.WithLabelValues(gateway, operation).Observe(duration.Seconds())
}

// IncPaymentOutcome фиксирует исход подтверждения оплаты
func (m *Metrics) IncPaymentOutcome(outcome string) {
	if m == nil {
		return
	}
	m.paymentOutcomesTotal.WithLabelValues(outcome).Inc()
}

// IncEnrichmentDegraded фиксирует потерю части данных при обогащении бронирований
func (m *Metrics) IncEnrichmentDegraded(kind string) {
	if m == nil {
		return
	}
	m.enrichmentDegradedTotal.WithLabelValues(kind).Inc()
}
