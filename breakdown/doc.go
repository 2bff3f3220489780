// Package breakdown turns a follow-up question and its attached review
// records into per-category token counts.
//
// The pipeline is a single pure pass: the model identifier resolves to an
// encoding, the annotations and pinned segments are rendered into two
// canonical text blocks, and the question plus both blocks are counted
// under that encoding. The resulting TokenBreakdown drives the budget
// indicator in the review sidebar, so every input degrades to a safe
// default instead of an error: a zero-value Input yields a zero-valued
// breakdown under the default encoding.
//
// Compute holds no state between calls. Callers that recompute per
// keystroke are expected to debounce on their side.
package breakdown
