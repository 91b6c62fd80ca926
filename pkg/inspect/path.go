package inspect

import (
	"fmt"
	"path/filepath"

	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/report"
	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
)

func (i *Inspector) showPath(w *report.Writer) error {
	goroot := i.goroot()
	w.Printf("GOROOT: %q", goroot)
	if err := w.Nest(func() error {
		src := filepath.Join(goroot, "src")
		w.Printf("standard library: %q", src)
		return i.desc.Describe(src)
	}); err != nil {
		return err
	}

	gopath := i.gopath()
	if len(gopath) == 0 {
		w.Line("GOPATH: none")
	} else {
		w.Line("GOPATH:")
		if err := w.Nest(func() error {
			for _, dir := range gopath {
				w.Printf("%q", dir)
				src := filepath.Join(dir, "src")
				if err := w.Nest(func() error {
					w.Printf("src: %q", src)
					return i.desc.Describe(src)
				}); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if modcache := i.modcache(gopath); modcache != "" {
		w.Printf("GOMODCACHE: %q", modcache)
		if err := i.desc.Describe(modcache); err != nil {
			return err
		}
	} else {
		w.Line("GOMODCACHE: none")
	}

	i.showOptionalVar(w, "GOFLAGS")
	i.showOptionalVar(w, "GOWORK")

	return i.showMainModule(w)
}

func (i *Inspector) goroot() string {
	if v, ok := i.host.getenv("GOROOT"); ok && v != "" {
		return v
	}
	return i.host.GOROOT
}

// gopath returns the non-empty GOPATH list entries.
func (i *Inspector) gopath() []string {
	value := i.host.GOPATH
	if v, ok := i.host.getenv("GOPATH"); ok && v != "" {
		value = v
	}

	var dirs []string
	for _, dir := range filepath.SplitList(value) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (i *Inspector) modcache(gopath []string) string {
	if v, ok := i.host.getenv("GOMODCACHE"); ok && v != "" {
		return v
	}
	if len(gopath) == 0 {
		return ""
	}
	return filepath.Join(gopath[0], "pkg", "mod")
}

func (i *Inspector) showOptionalVar(w *report.Writer, name string) {
	v, ok := i.host.getenv(name)
	if !ok || v == "" {
		w.Printf("%s: (unset)", name)
		return
	}
	w.Printf("%s: %q", name, v)
}

func (i *Inspector) showMainModule(w *report.Writer) error {
	cwd, err := i.host.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	gomod := findGoMod(i.host.Fs, cwd)
	if gomod == "" {
		w.Line("Main module: none, no go.mod above the current directory")
		return nil
	}

	w.Printf("Main module file: %q", gomod)
	data, err := afero.ReadFile(i.host.Fs, gomod)
	if err != nil {
		return fmt.Errorf("read %s: %w", gomod, err)
	}

	f, err := modfile.Parse(gomod, data, nil)
	if err != nil {
		i.log.WithFields(logger.Fields{
			"file":  gomod,
			"error": err,
		}).Debug("Failed to parse go.mod")
		return w.Nest(func() error {
			w.Printf("cannot parse: %v", err)
			return nil
		})
	}

	return w.Nest(func() error {
		if f.Module != nil {
			w.Printf("module: %q", f.Module.Mod.Path)
		}
		if f.Go != nil {
			w.Printf("go: %s", f.Go.Version)
		}
		if f.Toolchain != nil {
			w.Printf("toolchain: %s", f.Toolchain.Name)
		}
		w.Printf("requirements: %d", len(f.Require))

		return i.showReplacements(w, filepath.Dir(gomod), f.Replace)
	})
}

// showReplacements describes every replace directive whose target is a
// directory rather than a module version.
func (i *Inspector) showReplacements(w *report.Writer, moduleDir string, replace []*modfile.Replace) error {
	for _, r := range replace {
		if !modfile.IsDirectoryPath(r.New.Path) {
			continue
		}

		target := r.New.Path
		if !filepath.IsAbs(target) {
			target = filepath.Join(moduleDir, target)
		}
		w.Printf("replace %s => %q", r.Old.Path, r.New.Path)
		if err := i.desc.Describe(target); err != nil {
			return err
		}
	}
	return nil
}

// findGoMod walks up from dir to the filesystem root and returns the first
// go.mod it finds, or "" when there is none. Directories that cannot be
// read are skipped.
func findGoMod(fs afero.Fs, dir string) string {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, "go.mod")
		if info, err := fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
