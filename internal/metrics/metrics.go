// Package metrics exposes Prometheus collectors for the ledger.
package metrics

import (
	"math/big"
	"net/http"
	"strconv"
	"time"

	"create2earn/internal/core/domain"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cte"

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	transfers        *prometheus.CounterVec
	transferredUnits *prometheus.CounterVec
	taxCollected     prometheus.Counter
	registryChanges  *prometheus.CounterVec
	taxTotal         prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Settled transfers by kind and whether tax was applied.",
		}, []string{"kind", "taxed"}),
		transferredUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transferred_tokens_total",
			Help:      "Gross amount moved, in whole tokens.",
		}, []string{"kind"}),
		taxCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_collected_tokens_total",
			Help:      "Tax credited to tax recipients, in whole tokens.",
		}),
		registryChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tax_registry_changes_total",
			Help:      "Committed tax registry mutations by operation.",
		}, []string{"op"}),
		taxTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tax_total_percentage",
			Help:      "Sum of live tax percentages after the last registry change.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transfers,
		m.transferredUnits,
		m.taxCollected,
		m.registryChanges,
		m.taxTotal,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveTransfer records a settled transfer.
func (m *Metrics) ObserveTransfer(kind domain.TransferKind, taxed bool, amount, tax *uint256.Int) {
	m.transfers.WithLabelValues(string(kind), strconv.FormatBool(taxed)).Inc()
	m.transferredUnits.WithLabelValues(string(kind)).Add(wholeTokens(amount))
	if tax != nil && !tax.IsZero() {
		m.taxCollected.Add(wholeTokens(tax))
	}
}

// ObserveRegistryChange records a committed registry mutation.
func (m *Metrics) ObserveRegistryChange(op string, totalPercentage uint) {
	m.registryChanges.WithLabelValues(op).Inc()
	m.taxTotal.Set(float64(totalPercentage))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

var unit = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(domain.TokenDecimals)), nil))

// wholeTokens converts base units to a float number of tokens.
func wholeTokens(v *uint256.Int) float64 {
	if v == nil {
		return 0
	}
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(v.ToBig()), unit).Float64()
	return f
}
