// Package tokenbudget provides a top-level convenience entry point for
// computing token breakdowns with minimal boilerplate.
//
// Usage:
//
//	import "github.com/llmcouncil/tokenbudget"
//
//	bd := tokenbudget.Compute(tokenbudget.Input{
//	    Question: "Why?",
//	    Comments: comments,
//	    Segments: segments,
//	    Model:    "openai/gpt-4o",
//	})
//
// This is a thin wrapper around the breakdown package; both produce
// identical results. Use this package when you prefer the shorter import
// path, or New when you want to inject a logger, metrics, or extra
// encoding patterns.
package tokenbudget

import (
	"go.uber.org/zap"

	"github.com/llmcouncil/tokenbudget/breakdown"
	"github.com/llmcouncil/tokenbudget/internal/metrics"
	"github.com/llmcouncil/tokenbudget/tokenizer"
	"github.com/llmcouncil/tokenbudget/types"
)

// Re-export the value types so simple callers never need to import types/.
type (
	Annotation     = types.Annotation
	ContextSegment = types.ContextSegment
	TokenBreakdown = types.TokenBreakdown
	Input          = breakdown.Input
)

// Source type constants.
const (
	SourceCouncil     = types.SourceCouncil
	SourceSynthesizer = types.SourceSynthesizer
)

// Compute computes a token breakdown with the shared default calculator.
func Compute(in Input) TokenBreakdown {
	return breakdown.Compute(in)
}

// Option configures the calculator created by [New].
type Option func(*settings)

type settings struct {
	logger           *zap.Logger
	metricsNamespace string
	extraPatterns    []string
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetricsNamespace enables prometheus metrics on the default
// registerer under the given namespace.
func WithMetricsNamespace(namespace string) Option {
	return func(s *settings) {
		s.metricsNamespace = namespace
	}
}

// WithO200kPatterns appends extra model patterns that resolve to the
// o200k_base encoding.
func WithO200kPatterns(patterns ...string) Option {
	return func(s *settings) {
		s.extraPatterns = append(s.extraPatterns, patterns...)
	}
}

// New creates a configured [breakdown.Calculator] with its own encoder
// registry. Calculators are safe for concurrent use and cheap to share;
// build one per process rather than per call so the encoder cache is
// reused.
func New(opts ...Option) *breakdown.Calculator {
	s := &settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	regOpts := []tokenizer.Option{tokenizer.WithLogger(s.logger)}
	calcOpts := []breakdown.Option{breakdown.WithLogger(s.logger)}

	if s.metricsNamespace != "" {
		collector := metrics.NewCollector(s.metricsNamespace, nil, s.logger)
		regOpts = append(regOpts, tokenizer.WithMetrics(collector))
		calcOpts = append(calcOpts, breakdown.WithMetrics(collector))
	}
	if len(s.extraPatterns) > 0 {
		calcOpts = append(calcOpts, breakdown.WithO200kPatterns(s.extraPatterns))
	}

	calcOpts = append(calcOpts, breakdown.WithRegistry(tokenizer.NewEncoderRegistry(regOpts...)))
	return breakdown.New(calcOpts...)
}
