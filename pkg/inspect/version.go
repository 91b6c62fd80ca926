package inspect

import (
	"fmt"

	"github.com/sonemaro/godoctor/internal/version"
	"github.com/sonemaro/godoctor/pkg/report"
)

func (i *Inspector) showVersion(w *report.Writer) error {
	info := version.GetFrom(i.host.BuildInfo)

	w.Line("Go version:")
	_ = w.Nest(func() error {
		w.Line(info.GoVersion)
		return nil
	})
	w.Printf("Go compiler: %q", info.Compiler)
	w.Printf("Go platform: %q", info.Platform)

	exe, err := i.host.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	w.Printf("Executable: %q", exe)
	if err := i.desc.Describe(exe); err != nil {
		return err
	}

	goroot := i.host.GOROOT
	if env, ok := i.host.getenv("GOROOT"); ok && env != "" {
		goroot = env
		w.Printf("GOROOT: %q", goroot)
		if err := i.desc.Describe(goroot); err != nil {
			return err
		}
		w.Line("GOROOT is set in the environment.")
		if err := w.Nest(func() error {
			w.Printf("The built-in default is: %q", i.host.GOROOT)
			return i.desc.Describe(i.host.GOROOT)
		}); err != nil {
			return err
		}
	} else {
		w.Printf("GOROOT: %q", goroot)
		if err := i.desc.Describe(goroot); err != nil {
			return err
		}
		w.Line("GOROOT is the built-in default.")
	}

	w.Printf("godoctor version: %s (commit %s, built %s)", info.Version, info.GitCommit, info.BuildDate)
	if info.MainPath == "" {
		w.Line("No module build information is embedded.")
		return nil
	}

	w.Printf("Main module: %q %s", info.MainPath, info.MainVersion)
	if len(info.Settings) > 0 {
		w.Line("Build settings:")
		_ = w.Nest(func() error {
			for _, s := range info.Settings {
				w.Printf("%s=%s", s.Key, s.Value)
			}
			return nil
		})
	}
	w.Printf("Dependencies: %d", len(info.Deps))

	return nil
}
