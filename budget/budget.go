package budget

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/llmcouncil/tokenbudget/types"
)

// contextWindows maps model-identifier patterns to context-window sizes.
// Ordered: first match wins, so more specific patterns come first.
// Matched case-insensitively as substrings, like encoding inference.
var contextWindows = []struct {
	pattern string
	tokens  int
}{
	{"gpt-4.1", 1047576},
	{"gpt-4o", 128000},
	{"gpt-4-turbo", 128000},
	{"gpt-4", 8192},
	{"gpt-3.5-turbo", 16385},
	{"o1", 200000},
	{"claude", 200000},
	{"gemini", 1048576},
	{"deepseek", 128000},
}

// DefaultContextWindow is assumed for unrecognized models. Deliberately
// conservative so the indicator warns early rather than late.
const DefaultContextWindow = 8192

// ContextWindow returns the context-window size for a model identifier,
// falling back to DefaultContextWindow for unrecognized models.
func ContextWindow(model string) int {
	m := strings.ToLower(model)
	if m == "" {
		return DefaultContextWindow
	}
	for _, w := range contextWindows {
		if strings.Contains(m, w.pattern) {
			return w.tokens
		}
	}
	return DefaultContextWindow
}

// Status is the result of evaluating a breakdown against a ceiling.
type Status struct {
	Used        int     `json:"used"`
	Ceiling     int     `json:"ceiling"`
	Remaining   int     `json:"remaining"`
	Utilization float64 `json:"utilization"`
	OverBudget  bool    `json:"over_budget"`
}

// Alert is passed to handlers when utilization crosses the threshold.
type Alert struct {
	Status    Status  `json:"status"`
	Threshold float64 `json:"threshold"`
}

// AlertHandler receives threshold alerts.
type AlertHandler func(Alert)

// Tracker evaluates token breakdowns against a fixed ceiling.
type Tracker struct {
	ceiling   int
	threshold float64
	logger    *zap.Logger

	mu       sync.RWMutex
	handlers []AlertHandler
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithCeiling sets an explicit token ceiling.
func WithCeiling(tokens int) Option {
	return func(t *Tracker) {
		if tokens > 0 {
			t.ceiling = tokens
		}
	}
}

// WithModel derives the ceiling from the model's context window.
func WithModel(model string) Option {
	return func(t *Tracker) {
		t.ceiling = ContextWindow(model)
	}
}

// WithAlertThreshold sets the utilization fraction (0..1) past which alert
// handlers fire. Zero disables alerting.
func WithAlertThreshold(threshold float64) Option {
	return func(t *Tracker) {
		if threshold > 0 && threshold <= 1 {
			t.threshold = threshold
		}
	}
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTracker creates a Tracker. Without options the ceiling is
// DefaultContextWindow and alerting is disabled.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		ceiling: DefaultContextWindow,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnAlert registers a handler called when utilization crosses the
// threshold. Handlers run synchronously inside Evaluate.
func (t *Tracker) OnAlert(h AlertHandler) {
	if h == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = append(t.handlers, h)
}

// Ceiling returns the configured token ceiling.
func (t *Tracker) Ceiling() int {
	return t.ceiling
}

// Evaluate computes the budget status for a breakdown and fires alert
// handlers when the threshold is crossed. Evaluate records nothing: calling
// it twice with the same breakdown yields the same status both times.
func (t *Tracker) Evaluate(bd types.TokenBreakdown) Status {
	s := Status{
		Used:      bd.Total,
		Ceiling:   t.ceiling,
		Remaining: t.ceiling - bd.Total,
	}
	if s.Remaining < 0 {
		s.Remaining = 0
	}
	if t.ceiling > 0 {
		s.Utilization = float64(bd.Total) / float64(t.ceiling)
	}
	s.OverBudget = bd.Total > t.ceiling

	if t.threshold > 0 && s.Utilization >= t.threshold {
		t.logger.Warn("token budget threshold crossed",
			zap.Int("used", s.Used),
			zap.Int("ceiling", s.Ceiling),
			zap.Float64("utilization", s.Utilization),
			zap.Float64("threshold", t.threshold))

		alert := Alert{Status: s, Threshold: t.threshold}
		t.mu.RLock()
		handlers := t.handlers
		t.mu.RUnlock()
		for _, h := range handlers {
			h(alert)
		}
	}
	return s
}
