/*
Package section holds the ordered registry of report sections and the driver
that runs a requested subset of them.

Sections are built once, in order, and handed to New:

	reg, err := section.New(
	    section.Section{Name: "version", Description: "Show the Go version", Run: showVersion},
	    section.Section{Name: "os", Description: "Show the operating system", Run: showOS},
	)

	drv := section.NewDriver(reg, w, log, section.DriverConfig{})
	err = drv.Run(os.Args[1:])
*/
package section

import (
	"fmt"

	"github.com/sonemaro/godoctor/pkg/report"
)

// Routine writes one section of the report.
type Routine func(w *report.Writer) error

// Section is a named, documented report routine.
type Section struct {
	Name        string
	Description string
	Run         Routine
}

// Registry maps section names to sections and remembers registration order.
type Registry struct {
	order    []string
	sections map[string]Section
}

// New builds a registry from sections in the given order. A repeated name
// is a *DuplicateError.
func New(sections ...Section) (*Registry, error) {
	r := &Registry{sections: make(map[string]Section, len(sections))}
	for _, s := range sections {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends s to the registry.
func (r *Registry) Register(s Section) error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if s.Run == nil {
		return fmt.Errorf("%w: section %q has no routine", ErrInvalid, s.Name)
	}
	if _, exists := r.sections[s.Name]; exists {
		return &DuplicateError{Name: s.Name}
	}

	r.order = append(r.order, s.Name)
	r.sections[s.Name] = s
	return nil
}

// Names returns the section names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Lookup returns the section registered under name.
func (r *Registry) Lookup(name string) (Section, bool) {
	s, ok := r.sections[name]
	return s, ok
}

// Len reports the number of registered sections.
func (r *Registry) Len() int {
	return len(r.order)
}
