/*
Package commands implements the godoctor command line. There is a single
root command whose positional arguments are section names, so no
subcommand can shadow a section.
*/
package commands

import (
	"fmt"

	"github.com/sonemaro/godoctor/cmd/godoctor/app"
	"github.com/sonemaro/godoctor/internal/config"
	"github.com/sonemaro/godoctor/internal/version"
	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/spf13/cobra"
)

// Options holds command-line options
type Options struct {
	Verbose int
	NoColor bool
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "godoctor [section...]",
		Short: "Report on the Go installation and its environment",
		Long: `godoctor prints a diagnostic report about the Go toolchain, the host,
and the environment variables and paths that influence them.

Run "godoctor help" for the list of sections. With no arguments every
section is shown.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are parsed in RunE so unknown dash tokens reach the driver.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			known, names := splitArgs(cmd.Flags(), args)
			if err := cmd.Flags().Parse(known); err != nil {
				return err
			}

			if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
				return nil
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return a.Help()
			}
			return a.Run(names)
		},
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd, opts)
		if err == nil {
			err = a.Help()
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	})

	rootCmd.Flags().CountVarP(&opts.Verbose, "verbose", "v",
		"log diagnostics to stderr (repeat for more detail)")
	rootCmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"disable coloured section dividers")
	rootCmd.Flags().BoolP("help", "h", false, "list the report sections")
	rootCmd.Flags().Bool("version", false, "print the godoctor version")

	return rootCmd
}

// newApp loads the configuration, applies command-line overrides and
// builds the application around the command's output streams.
func newApp(cmd *cobra.Command, opts *Options) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    cmd.ErrOrStderr(),
	})

	log.WithFields(logger.Fields{
		"verbosity": cfg.Verbose,
		"config":    cfg.String(),
	}).Debug("Initializing command")

	return app.New(&cfg, cmd.OutOrStdout(), log)
}
