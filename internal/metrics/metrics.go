// Package metrics define y registra las métricas Prometheus de la aplicación.
// Los collectors se registran en el registry por defecto al importar el paquete.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// LoginAttemptsTotal cuenta intentos de login.
// Labels:
//   - channel: "session" (SessionService) o "token" (API HTTP)
//   - result: "success" o "invalid_credentials"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total de intentos de login por canal y resultado.",
	},
	[]string{"channel", "result"},
)

// MutationsTotal cuenta mutaciones sobre el inventario en memoria.
// Labels:
//   - entity: product, supplier, customer, purchase_order, sales_order, stock_operation
//   - op: add, update, delete
//   - result: "applied" o "noop" (id inexistente)
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total de mutaciones del inventario por entidad, operación y resultado.",
	},
	[]string{"entity", "op", "result"},
)

// HTTPRequestsTotal cuenta peticiones HTTP atendidas.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP por método, ruta y código.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration mide la latencia de las peticiones HTTP.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// Helpers para no repetir literales de labels en los servicios.

// RecordLogin registra un intento de login.
func RecordLogin(channel string, ok bool) {
	result := "success"
	if !ok {
		result = "invalid_credentials"
	}
	LoginAttemptsTotal.WithLabelValues(channel, result).Inc()
}

// RecordMutation registra una mutación del inventario.
func RecordMutation(entity, op string, applied bool) {
	result := "applied"
	if !applied {
		result = "noop"
	}
	MutationsTotal.WithLabelValues(entity, op, result).Inc()
}
