package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector exposes counters for the encoder registry and the breakdown
// calculator. It implements tokenizer.Metrics and breakdown.Metrics; the
// counters observe the computation and never influence it.
type Collector struct {
	encodersInitialized *prometheus.CounterVec
	estimatorFallbacks  *prometheus.CounterVec
	tokensCounted       *prometheus.CounterVec
	breakdownsComputed  *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a Collector registered on reg. A nil reg uses the
// default prometheus registerer.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.encodersInitialized = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "encoders_initialized_total",
			Help:      "Total number of tiktoken encoders initialized",
		},
		[]string{"encoding"},
	)

	c.estimatorFallbacks = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimator_fallbacks_total",
			Help:      "Total number of counts served by the character estimator because tiktoken was unavailable",
		},
		[]string{"encoding"},
	)

	c.tokensCounted = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_counted_total",
			Help:      "Total number of tokens counted, by encoding",
		},
		[]string{"encoding"},
	)

	c.breakdownsComputed = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breakdowns_computed_total",
			Help:      "Total number of token breakdowns computed",
		},
		[]string{"encoding"},
	)

	return c
}

// EncoderInitialized records a successful encoder init.
func (c *Collector) EncoderInitialized(encoding string) {
	c.encodersInitialized.WithLabelValues(encoding).Inc()
}

// EstimatorFallback records a count served by the estimator.
func (c *Collector) EstimatorFallback(encoding string) {
	c.estimatorFallbacks.WithLabelValues(encoding).Inc()
	c.logger.Debug("estimator fallback recorded", zap.String("encoding", encoding))
}

// TokensCounted records n tokens counted under encoding.
func (c *Collector) TokensCounted(encoding string, n int) {
	c.tokensCounted.WithLabelValues(encoding).Add(float64(n))
}

// BreakdownComputed records one computed breakdown.
func (c *Collector) BreakdownComputed(encoding string) {
	c.breakdownsComputed.WithLabelValues(encoding).Inc()
}
