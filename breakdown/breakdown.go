package breakdown

import (
	"go.uber.org/zap"

	"github.com/llmcouncil/tokenbudget/tokenizer"
	"github.com/llmcouncil/tokenbudget/types"
)

// Metrics receives a counter tick per computed breakdown. A nil Metrics is
// a no-op.
type Metrics interface {
	BreakdownComputed(encoding string)
}

// Input is everything a breakdown computation needs. Every field may be
// left zero: a zero-value Input is valid and yields a zero-valued
// breakdown.
type Input struct {
	Question string                 `json:"question,omitempty"`
	Comments []types.Annotation     `json:"comments,omitempty"`
	Segments []types.ContextSegment `json:"segments,omitempty"`
	Model    string                 `json:"model,omitempty"`
}

// Calculator computes token breakdowns against a shared encoder registry.
// It is safe for concurrent use: the registry is read-only after encoder
// init and Compute itself holds no state.
type Calculator struct {
	registry      *tokenizer.EncoderRegistry
	logger        *zap.Logger
	extraPatterns []string
	metrics       Metrics
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRegistry sets the encoder registry. Calculators sharing one registry
// share its encoder cache.
func WithRegistry(r *tokenizer.EncoderRegistry) Option {
	return func(c *Calculator) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithO200kPatterns appends extra model patterns that resolve to the
// o200k_base encoding, for model families newer than the built-in list.
func WithO200kPatterns(patterns []string) Option {
	return func(c *Calculator) {
		c.extraPatterns = append(c.extraPatterns, patterns...)
	}
}

// WithMetrics attaches a metrics sink to the calculator.
func WithMetrics(m Metrics) Option {
	return func(c *Calculator) {
		c.metrics = m
	}
}

// New creates a Calculator. Without options it uses a fresh registry and a
// no-op logger.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = tokenizer.NewEncoderRegistry(tokenizer.WithLogger(c.logger))
	}
	return c
}

// Compute resolves the encoding for in.Model, renders the highlight and
// context-stack blocks, and counts the question and both blocks under that
// encoding. Total is the sum of the three counts by construction. Compute
// is total over its domain and never fails.
func (c *Calculator) Compute(in Input) types.TokenBreakdown {
	enc := tokenizer.InferEncodingWithPatterns(in.Model, c.extraPatterns)

	highlights := BuildHighlightsText(in.Comments)
	stack := BuildContextStackText(in.Segments)

	prompt := c.registry.CountTokens(in.Question, enc)
	highlight := c.registry.CountTokens(highlights, enc)
	stackTokens := c.registry.CountTokens(stack, enc)

	bd := types.TokenBreakdown{
		EncodingName:    string(enc),
		PromptTokens:    prompt,
		HighlightTokens: highlight,
		StackTokens:     stackTokens,
		Total:           prompt + highlight + stackTokens,
	}

	c.logger.Debug("token breakdown computed",
		zap.String("encoding", bd.EncodingName),
		zap.Int("prompt_tokens", bd.PromptTokens),
		zap.Int("highlight_tokens", bd.HighlightTokens),
		zap.Int("stack_tokens", bd.StackTokens),
		zap.Int("total", bd.Total))
	if c.metrics != nil {
		c.metrics.BreakdownComputed(bd.EncodingName)
	}
	return bd
}

// defaultCalculator backs the package-level Compute. Built once; shares its
// encoder cache across all package-level calls.
var defaultCalculator = New()

// Compute computes a breakdown with the shared default Calculator.
func Compute(in Input) types.TokenBreakdown {
	return defaultCalculator.Compute(in)
}
