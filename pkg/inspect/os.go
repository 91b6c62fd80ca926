package inspect

import (
	"fmt"
	"runtime"

	"github.com/sonemaro/godoctor/pkg/report"
)

// Uname is the kernel identification of the host.
type Uname struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

func (u Uname) String() string {
	return fmt.Sprintf("sysname=%q nodename=%q release=%q version=%q machine=%q",
		u.Sysname, u.Nodename, u.Release, u.Version, u.Machine)
}

func (i *Inspector) showOS(w *report.Writer) error {
	cwd, err := i.host.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	w.Printf("Current directory: %q", cwd)
	if err := i.desc.Describe(cwd); err != nil {
		return err
	}

	w.Printf("Platform: %q", runtime.GOOS+"/"+runtime.GOARCH)

	u, err := i.host.Uname()
	if err != nil {
		return fmt.Errorf("uname: %w", err)
	}
	w.Printf("uname: %s", u)

	host, err := i.host.Hostname()
	if err != nil {
		return fmt.Errorf("hostname: %w", err)
	}
	w.Printf("Hostname: %q", host)
	w.Printf("CPUs: %d, GOMAXPROCS: %d", i.host.NumCPU(), runtime.GOMAXPROCS(0))

	if !i.host.IsTerminal() {
		w.Line("Standard output is not a terminal.")
		return nil
	}
	w.Line("Standard output is a terminal.")
	width, height, err := i.host.TerminalSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	_ = w.Nest(func() error {
		w.Printf("size: %d columns x %d rows", width, height)
		return nil
	})

	return nil
}
