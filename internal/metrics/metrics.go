// Package metrics define y registra las métricas Prometheus de la API de vales.
// Se registran en el registry por defecto al importar el paquete (promauto).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vales"

// ── Vales ─────────────────────────────────────────────────────────────────────

// VouchersCreatedTotal vales creados.
var VouchersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vouchers_created_total",
		Help:      "Total de vales creados.",
	},
)

// VouchersSettledTotal marcas de completado aplicadas (incluye repeticiones idempotentes).
var VouchersSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vouchers_settled_total",
		Help:      "Total de vales marcados como completados.",
	},
)

// VouchersDeletedTotal vales eliminados por su local origen.
var VouchersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vouchers_deleted_total",
		Help:      "Total de vales eliminados.",
	},
)

// VouchersExportedTotal filas escritas en exportaciones CSV.
var VouchersExportedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vouchers_exported_total",
		Help:      "Total de vales exportados a CSV.",
	},
)

// ── Autenticación ─────────────────────────────────────────────────────────────

// LoginsTotal intentos de login.
// Label:
//   - result: "ok", "invalid" o "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total de intentos de login por resultado.",
	},
	[]string{"result"},
)

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestsTotal peticiones atendidas.
// Labels:
//   - method: verbo HTTP
//   - route: patrón de la ruta de Fiber (ej. "/api/vales/:id")
//   - status: código de respuesta
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de peticiones HTTP por método, ruta y código.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration latencia por ruta.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)
