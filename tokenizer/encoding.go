package tokenizer

import "strings"

// Encoding names a tiktoken BPE vocabulary.
type Encoding string

const (
	// EncodingO200kBase is the vocabulary used by the gpt-4o, gpt-4.1 and
	// o1 model families.
	EncodingO200kBase Encoding = "o200k_base"

	// EncodingCl100kBase is the older vocabulary shared by the gpt-4 and
	// gpt-3.5 era models, and the compatibility default for everything
	// else (Anthropic, Google, open-weight models).
	EncodingCl100kBase Encoding = "cl100k_base"
)

// DefaultEncoding is used whenever a model identifier or encoding name is
// not recognized.
const DefaultEncoding = EncodingCl100kBase

// o200kPatterns mark a model identifier as belonging to an o200k_base
// family. Matched case-insensitively as substrings, so provider-prefixed
// identifiers like "openai/gpt-4o" match too. "o200k" is a literal escape
// hatch for callers that name the encoding directly.
var o200kPatterns = []string{"gpt-4o", "gpt-4.1", "o1", "o200k"}

// InferEncoding maps a model identifier to the encoding its family uses.
// Unrecognized or empty identifiers resolve to DefaultEncoding.
func InferEncoding(model string) Encoding {
	return InferEncodingWithPatterns(model, nil)
}

// InferEncodingWithPatterns is InferEncoding with extra o200k-family
// patterns appended, for model families shipped after the built-in list.
func InferEncodingWithPatterns(model string, extra []string) Encoding {
	m := strings.ToLower(model)
	if m == "" {
		return DefaultEncoding
	}
	for _, p := range o200kPatterns {
		if strings.Contains(m, p) {
			return EncodingO200kBase
		}
	}
	for _, p := range extra {
		if p != "" && strings.Contains(m, strings.ToLower(p)) {
			return EncodingO200kBase
		}
	}
	return DefaultEncoding
}

// ParseEncoding returns the Encoding for name, falling back to
// DefaultEncoding for unknown names.
func ParseEncoding(name string) Encoding {
	switch Encoding(name) {
	case EncodingO200kBase:
		return EncodingO200kBase
	case EncodingCl100kBase:
		return EncodingCl100kBase
	default:
		return DefaultEncoding
	}
}
