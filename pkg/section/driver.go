package section

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/report"
)

const (
	// AllToken selects every registered section.
	AllToken = "all"

	allDescription = "Show every section"
)

var helpTokens = map[string]bool{
	"help":   true,
	"--help": true,
}

// DriverConfig holds driver options.
type DriverConfig struct {
	// NoColor disables coloured dividers and diagnostics.
	NoColor bool
}

// Driver runs requested sections against a registry.
type Driver struct {
	reg *Registry
	w   *report.Writer
	log logger.Logger

	divider *color.Color
	warn    *color.Color
}

// NewDriver returns a Driver writing to w.
func NewDriver(reg *Registry, w *report.Writer, log logger.Logger, config DriverConfig) *Driver {
	divider := color.New(color.FgCyan, color.Bold)
	warn := color.New(color.FgYellow)
	if config.NoColor {
		divider.DisableColor()
		warn.DisableColor()
	}

	return &Driver{
		reg:     reg,
		w:       w,
		log:     log,
		divider: divider,
		warn:    warn,
	}
}

// Run writes the sections named in names, in order. Any help token prints
// the section list and runs nothing. No names, or just "all", runs every
// section. Unknown names are reported and skipped. A failing section stops
// the run and its error is returned.
func (d *Driver) Run(names []string) error {
	for _, name := range names {
		if helpTokens[name] {
			d.log.Debug("Help requested")
			d.Help()
			return d.w.Err()
		}
	}

	if len(names) == 0 || (len(names) == 1 && names[0] == AllToken) {
		names = d.reg.Names()
	}

	d.log.WithFields(logger.Fields{
		"sections": names,
	}).Debug("Starting report")

	for _, name := range names {
		s, ok := d.reg.Lookup(name)
		if !ok {
			d.log.WithFields(logger.Fields{
				"section": name,
			}).Debug("Unknown section requested")
			d.w.Line(d.warn.Sprintf("*** Don't understand %q", name))
			continue
		}

		if err := d.runSection(s); err != nil {
			return err
		}
	}

	return d.w.Err()
}

func (d *Driver) runSection(s Section) error {
	d.log.WithFields(logger.Fields{
		"section": s.Name,
	}).Debug("Running section")

	d.w.Blank()
	d.w.Line(d.divider.Sprint(dividerText(s)))

	if err := s.Run(d.w); err != nil {
		d.log.WithFields(logger.Fields{
			"section": s.Name,
			"error":   err,
		}).Debug("Section failed")
		return fmt.Errorf("section %s: %w", s.Name, err)
	}
	if err := d.w.Err(); err != nil {
		return fmt.Errorf("section %s: %w", s.Name, err)
	}
	return nil
}

// Help lists the registered sections with their descriptions, then "all".
func (d *Driver) Help() {
	names := d.reg.Names()

	width := len(AllToken)
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	d.w.Line("Sections are:")
	_ = d.w.Nest(func() error {
		for _, name := range names {
			s, _ := d.reg.Lookup(name)
			d.w.Printf("%-*s  %s", width, name, s.Description)
		}
		d.w.Printf("%-*s  %s", width, AllToken, allDescription)
		return nil
	})
}

func dividerText(s Section) string {
	if s.Description == "" {
		return fmt.Sprintf("--- %s ----------", s.Name)
	}
	return fmt.Sprintf("--- %s: %s ----------", s.Name, s.Description)
}
