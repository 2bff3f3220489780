package types

// TokenBreakdown is the per-category token accounting for one follow-up
// question: the question text itself, the rendered highlight comments, and
// the rendered context stack, all counted under the same encoding.
//
// Total is always the sum of the three category counts. The value is
// computed fresh on every call and never cached by this module.
type TokenBreakdown struct {
	EncodingName    string `json:"encoding_name"`
	PromptTokens    int    `json:"prompt_tokens"`
	HighlightTokens int    `json:"highlight_tokens"`
	StackTokens     int    `json:"stack_tokens"`
	Total           int    `json:"total"`
}

// Add adds another TokenBreakdown to this one, category by category.
// The receiver's encoding name is kept.
func (b *TokenBreakdown) Add(other TokenBreakdown) {
	b.PromptTokens += other.PromptTokens
	b.HighlightTokens += other.HighlightTokens
	b.StackTokens += other.StackTokens
	b.Total += other.Total
}
