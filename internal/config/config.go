package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Verbose sets the diagnostic log level (0 info, 1 debug, 2+ trace)
	Verbose int

	// NoColor disables coloured section dividers
	NoColor bool

	// Indent is the number of spaces per nesting level of the report
	Indent int

	// MaxEntries is how many directory entries are listed before the rest
	// are summarised as "and K more"
	MaxEntries int
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("verbose", 0)
	v.SetDefault("no_color", false)
	v.SetDefault("indent", DefaultIndent)
	v.SetDefault("max_entries", DefaultMaxEntries)

	// Configure environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("verbose")
	_ = v.BindEnv("no_color")
	_ = v.BindEnv("indent")
	_ = v.BindEnv("max_entries")

	cfg := Config{
		Verbose:    parseVerbosity(v.GetString("verbose")),
		NoColor:    v.GetBool("no_color"),
		Indent:     v.GetInt("indent"),
		MaxEntries: v.GetInt("max_entries"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parseVerbosity accepts either a number or a run of 'v's.
func parseVerbosity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return strings.Count(s, "v")
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	if c.Indent < MinIndent || c.Indent > MaxIndent {
		return fmt.Errorf("indent must be between %d and %d spaces", MinIndent, MaxIndent)
	}

	if c.MaxEntries < MinMaxEntries {
		return fmt.Errorf("max entries must be at least %d", MinMaxEntries)
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Verbose: %d, NoColor: %v, Indent: %d, MaxEntries: %d}",
		c.Verbose, c.NoColor, c.Indent, c.MaxEntries,
	)
}
