// Package metrics provides the module's prometheus collector.
// This package is internal and should not be imported by external projects.
package metrics
