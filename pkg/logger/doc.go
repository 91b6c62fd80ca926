/*
Package logger provides the diagnostic logging used by godoctor.
It wraps uber-go/zap behind a small interface with verbosity levels and
structured fields.

Logs are written to stderr as JSON so they never interleave with the
report, which godoctor prints to stdout.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0, // Info, Warn, Error
	})

	log.Info("Report started")
	log.Debug("Running section")  // Only shown with verbosity >= 1
	log.Trace("Describing path")  // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "section": "env",
	    "count":   12,
	}).Debug("Environment filtered")

Environment Integration:

	GODOCTOR_VERBOSE=vv godoctor path

A Nop logger is available for library callers that do not care about
diagnostics:

	d := pathinfo.NewDescriber(fs, w, logger.NewNop())
*/
package logger
