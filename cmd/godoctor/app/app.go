/*
Package app provides the application container for godoctor. It wires the
report writer, the path describer, the inspector sections and the driver
that runs them.

Usage:

	a, err := app.New(cfg, os.Stdout, log)
	if err != nil {
	    return err
	}
	return a.Run(args)
*/
package app

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/sonemaro/godoctor/internal/config"
	"github.com/sonemaro/godoctor/pkg/inspect"
	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/pathinfo"
	"github.com/sonemaro/godoctor/pkg/report"
	"github.com/sonemaro/godoctor/pkg/section"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger

	writer *report.Writer
	driver *section.Driver
}

// New creates an application reading from the real host and writing the
// report to out.
func New(cfg *config.Config, out io.Writer, log logger.Logger) (*App, error) {
	return NewWithHost(cfg, inspect.NewHost(), out, log)
}

// NewWithHost creates an application reading from host.
func NewWithHost(cfg *config.Config, host *inspect.Host, out io.Writer, log logger.Logger) (*App, error) {
	a := &App{
		config: cfg,
		log:    log,
		writer: report.NewWriter(out, cfg.Indent),
	}

	desc := pathinfo.NewDescriber(pathinfo.Config{
		MaxEntries: cfg.MaxEntries,
	}, host.Fs, a.writer, log)

	reg, err := section.New(inspect.New(host, desc, log).Sections()...)
	if err != nil {
		return nil, fmt.Errorf("register sections: %w", err)
	}

	a.driver = section.NewDriver(reg, a.writer, log, section.DriverConfig{
		NoColor: cfg.NoColor,
	})

	a.log.WithFields(logger.Fields{
		"sections":   reg.Len(),
		"indent":     cfg.Indent,
		"maxEntries": cfg.MaxEntries,
	}).Debug("Application initialized")

	return a, nil
}

// Run writes the sections named in names. A panic inside a section is
// returned as an error.
func (a *App) Run(names []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	return a.driver.Run(names)
}

// Help writes the list of sections.
func (a *App) Help() error {
	a.driver.Help()
	return a.writer.Err()
}
