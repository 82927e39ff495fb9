package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hl_signer"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Service holds the signer's Prometheus collectors and the registry they are
// registered with.
type Service struct {
	Registry *prometheus.Registry

	SignaturesTotal  *prometheus.CounterVec
	SigningDuration  *prometheus.HistogramVec
	ActionHashTotal  *prometheus.CounterVec
	KeyManagerLoaded prometheus.Gauge
}

// New creates a Service backed by a fresh registry that also exports Go
// runtime and process collectors.
func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(registry)
}

// NewWithRegistry registers all collectors with registry.
func NewWithRegistry(registry *prometheus.Registry) *Service {
	factory := promauto.With(registry)

	return &Service{
		Registry: registry,
		SignaturesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signatures_total",
			Help:      "The total number of signing requests by kind, network and result",
		}, []string{"kind", "network", "result"}),
		SigningDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "signing_duration_seconds",
			Help:      "Time spent hashing and signing a request",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		}, []string{"kind"}),
		ActionHashTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_hashes_total",
			Help:      "The total number of action hashes computed without signing",
		}, []string{"result"}),
		KeyManagerLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "key_loaded",
			Help:      "1 while a signing key is held in memory",
		}),
	}
}

// ObserveSignature records the outcome and latency of one signing request.
func (s *Service) ObserveSignature(kind string, network string, start time.Time, err error) {
	if s == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultError
	}

	s.SignaturesTotal.WithLabelValues(kind, network, result).Inc()
	s.SigningDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// ObserveActionHash records one hash-only request.
func (s *Service) ObserveActionHash(err error) {
	if s == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	s.ActionHashTotal.WithLabelValues(result).Inc()
}

// SetKeyLoaded flips the key gauge.
func (s *Service) SetKeyLoaded(loaded bool) {
	if s == nil {
		return
	}

	if loaded {
		s.KeyManagerLoaded.Set(1)
	} else {
		s.KeyManagerLoaded.Set(0)
	}
}
