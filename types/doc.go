// Package types provides the shared value types of the tokenbudget module.
//
// It is the lowest-level package and depends on no other package in the
// module. It defines the two kinds of user-created review records
// (Annotation and ContextSegment), the SourceType discriminator shared by
// both, and the TokenBreakdown value object produced by the breakdown
// package.
//
// Records arrive from the surrounding application with the source type
// sometimes left blank; Normalize resolves that exactly once at the module
// boundary, so downstream code always sees an explicit SourceType.
package types
