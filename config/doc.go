// Package config loads the module's configuration with the precedence
// defaults, then YAML file, then environment variables prefixed with
// TOKENBUDGET_.
//
// The breakdown core itself reads no files and no environment; this
// package exists for embedding applications that want to extend the
// encoding pattern list, pin a budget ceiling, or configure logging
// without recompiling.
package config
