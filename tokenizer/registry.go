package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"
)

// Metrics receives counters from the registry. Implemented by the module's
// internal prometheus collector; a nil Metrics is a no-op.
type Metrics interface {
	EncoderInitialized(encoding string)
	EstimatorFallback(encoding string)
	TokensCounted(encoding string, n int)
}

// entry holds one lazily initialized encoder.
type entry struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// EncoderRegistry caches one tiktoken encoder per encoding. Each encoder is
// built once, on first use, and shared by all subsequent calls; after
// initialization the map is read-only, so concurrent readers need no
// locking.
type EncoderRegistry struct {
	entries map[Encoding]*entry
	logger  *zap.Logger
	metrics Metrics
}

// Option configures an EncoderRegistry.
type Option func(*EncoderRegistry)

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *EncoderRegistry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics attaches a metrics sink to the registry.
func WithMetrics(m Metrics) Option {
	return func(r *EncoderRegistry) {
		r.metrics = m
	}
}

// NewEncoderRegistry creates a registry with one slot per supported
// encoding. No encoder data is loaded until first use.
func NewEncoderRegistry(opts ...Option) *EncoderRegistry {
	r := &EncoderRegistry{
		entries: map[Encoding]*entry{
			EncodingO200kBase:  {},
			EncodingCl100kBase: {},
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the cached encoder for enc, initializing it on first use.
// Unknown encodings resolve to DefaultEncoding.
func (r *EncoderRegistry) Get(enc Encoding) (*tiktoken.Tiktoken, error) {
	e, ok := r.entries[enc]
	if !ok {
		enc = DefaultEncoding
		e = r.entries[enc]
	}

	e.once.Do(func() {
		tk, err := tiktoken.GetEncoding(string(enc))
		if err != nil {
			e.err = fmt.Errorf("init tiktoken encoding %s: %w", enc, err)
			return
		}
		e.enc = tk
		r.logger.Debug("tiktoken encoder initialized", zap.String("encoding", string(enc)))
		if r.metrics != nil {
			r.metrics.EncoderInitialized(string(enc))
		}
	})
	return e.enc, e.err
}

// CountTokens returns the number of tokens text encodes to under enc. It
// never fails: empty text counts as zero, unknown encodings fall back to
// DefaultEncoding, and a failed encoder init falls back to the character
// estimator with a logged warning.
func (r *EncoderRegistry) CountTokens(text string, enc Encoding) int {
	if text == "" {
		return 0
	}
	if _, ok := r.entries[enc]; !ok {
		enc = DefaultEncoding
	}

	tk, err := r.Get(enc)
	if err != nil {
		r.logger.Warn("tiktoken unavailable, falling back to character estimate",
			zap.String("encoding", string(enc)),
			zap.Error(err))
		if r.metrics != nil {
			r.metrics.EstimatorFallback(string(enc))
		}
		return EstimateTokens(text)
	}

	n := len(tk.Encode(text, nil, nil))
	if r.metrics != nil {
		r.metrics.TokensCounted(string(enc), n)
	}
	return n
}
