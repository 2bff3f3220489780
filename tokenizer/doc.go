// Package tokenizer selects and caches the sub-word encoders used for
// token counting.
//
// Two tiktoken encodings are supported: o200k_base for the newer OpenAI
// model families and cl100k_base as the widely-compatible default.
// InferEncoding classifies a model identifier into one of the two by
// substring matching; everything unrecognized resolves to the default
// rather than an error, because the counts feed a display-only budget
// indicator where an approximate answer beats a hard failure.
//
// EncoderRegistry builds each tiktoken encoder once, on first use, and
// serves it read-only afterwards, so concurrent counting needs no
// caller-side locking. When an encoder cannot be initialized (tiktoken
// loads its vocabulary data lazily and that load can fail), counting falls
// back to a character-class estimator instead of surfacing the error.
package tokenizer
