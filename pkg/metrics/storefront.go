package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront records HTTP traffic, cart activity and checkout handoffs.
// A nil *Storefront is valid and records nothing.
type Storefront struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	cartOps   *prometheus.CounterVec
	checkouts prometheus.Counter
}

// NewStorefront registers the storefront metrics on the provided registerer.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_operations_total",
		Help: "Cart mutations by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storefront_checkouts_total",
		Help: "Checkout links generated.",
	})
	reg.MustRegister(requests, latency, cartOps, checkouts)
	return &Storefront{
		requests:  requests,
		latency:   latency,
		cartOps:   cartOps,
		checkouts: checkouts,
	}
}

// RegisterSessionGauge exposes the live session count via fn.
func RegisterSessionGauge(reg prometheus.Registerer, fn func() float64) {
	if reg == nil {
		return
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "storefront_sessions",
		Help: "Sessions currently held in memory.",
	}, fn))
}

// ObserveRequest records one served HTTP request.
func (s *Storefront) ObserveRequest(route, method string, status int, duration time.Duration) {
	if s == nil || s.requests == nil {
		return
	}
	route = normalizeLabel(route)
	s.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	s.latency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// IncCartOp counts a cart mutation ("add", "remove", "set_quantity").
func (s *Storefront) IncCartOp(op string) {
	if s == nil || s.cartOps == nil {
		return
	}
	s.cartOps.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncCheckout counts a generated checkout link.
func (s *Storefront) IncCheckout() {
	if s == nil || s.checkouts == nil {
		return
	}
	s.checkouts.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
