package config

// EnvPrefix is prepended, with an underscore, to every environment key.
const EnvPrefix = "GODOCTOR"

// Constants for configuration limits and defaults
const (
	// DefaultIndent is the default number of spaces per report level
	DefaultIndent = 4

	// MinIndent and MaxIndent bound the indent width
	MinIndent = 1
	MaxIndent = 16

	// DefaultMaxEntries is the default number of directory names shown
	DefaultMaxEntries = 6

	// MinMaxEntries is the smallest allowed MaxEntries
	MinMaxEntries = 1
)
