// Package config provides configuration management for godoctor.
// It reads environment variables and validates every parameter. Command-line
// flags are applied on top by the cmd package.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	GODOCTOR_VERBOSE      Verbosity level, a number or a run of 'v's
//	GODOCTOR_NO_COLOR     Disable coloured dividers (true/false)
//	GODOCTOR_INDENT       Spaces per nesting level (default: 4)
//	GODOCTOR_MAX_ENTRIES  Directory entries listed before "and K more" (default: 6)
//
// # Configuration Validation
//
// The package performs validation on all configuration values:
//   - Verbose must be non-negative
//   - Indent must be between 1 and 16
//   - MaxEntries must be at least 1
//
// # Default Values
//
// The following defaults are applied if not specified:
//   - Verbose:     0
//   - NoColor:     false
//   - Indent:      4
//   - MaxEntries:  6
//
// The configuration is immutable after loading and is meant to be read
// once at startup.
package config
