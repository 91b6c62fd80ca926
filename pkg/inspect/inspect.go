/*
Package inspect implements the godoctor report sections. Each section reads
facts about the Go installation or the host through a Host and prints them,
handing anything that looks like a path to a pathinfo.Describer.

	host := inspect.NewHost()
	ins := inspect.New(host, describer, log)
	reg, err := section.New(ins.Sections()...)
*/
package inspect

import (
	"go/build"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sonemaro/godoctor/internal/version"
	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/pathinfo"
	"github.com/sonemaro/godoctor/pkg/section"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Host is everything the sections read from the machine. NewHost fills it
// with the real thing; tests substitute fields.
type Host struct {
	Fs         afero.Fs
	Environ    func() []string
	Getwd      func() (string, error)
	Executable func() (string, error)
	Hostname   func() (string, error)
	Uname      func() (Uname, error)

	// IsTerminal and TerminalSize describe standard output.
	IsTerminal   func() bool
	TerminalSize func() (width, height int, err error)

	// GOROOT and GOPATH are the toolchain defaults used when the
	// environment does not set them.
	GOROOT string
	GOPATH string

	NumCPU    func() int
	BuildInfo version.Reader
}

// NewHost returns a Host backed by the operating system.
func NewHost() *Host {
	stdout := int(os.Stdout.Fd())
	return &Host{
		Fs:           afero.NewOsFs(),
		Environ:      os.Environ,
		Getwd:        os.Getwd,
		Executable:   os.Executable,
		Hostname:     os.Hostname,
		Uname:        readUname,
		IsTerminal:   func() bool { return term.IsTerminal(stdout) },
		TerminalSize: func() (int, int, error) { return term.GetSize(stdout) },
		GOROOT:       build.Default.GOROOT,
		GOPATH:       build.Default.GOPATH,
		NumCPU:       runtime.NumCPU,
		BuildInfo:    debug.ReadBuildInfo,
	}
}

// getenv returns the value of name in the host environment.
func (h *Host) getenv(name string) (string, bool) {
	prefix := name + "="
	for _, kv := range h.Environ() {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

// Inspector owns the section routines.
type Inspector struct {
	host *Host
	desc *pathinfo.Describer
	log  logger.Logger
}

// New returns an Inspector reading from host. desc must write to the same
// report.Writer the sections are run with.
func New(host *Host, desc *pathinfo.Describer, log logger.Logger) *Inspector {
	return &Inspector{
		host: host,
		desc: desc,
		log:  log,
	}
}

// Sections returns the report sections in display order.
func (i *Inspector) Sections() []section.Section {
	return []section.Section{
		{Name: "version", Description: "Show the Go version and installation", Run: i.showVersion},
		{Name: "os", Description: "Show the operating system and working directory", Run: i.showOS},
		{Name: "env", Description: "Show Go-related environment variables", Run: i.showEnv},
		{Name: "sizes", Description: "Show integer and pointer sizes", Run: i.showSizes},
		{Name: "encoding", Description: "Show text encoding defaults", Run: i.showEncoding},
		{Name: "locale", Description: "Show locale settings", Run: i.showLocale},
		{Name: "path", Description: "Show where Go looks for packages", Run: i.showPath},
	}
}
