/*
Package pathinfo renders what is on disk at a path: whether it exists, which
symlink it is and where that leads, how many entries a directory holds, and
how big a file is.

Basic usage:

	w := report.NewWriter(os.Stdout, report.DefaultIndent)
	d := pathinfo.NewDescriber(pathinfo.Config{}, afero.NewOsFs(), w, log)

	w.Printf("Go executable: %q", exe)
	if err := d.Describe(exe); err != nil {
	    return err
	}

Every top-level Describe starts with a fresh set of seen link targets, so a
symlink cycle is reported as "already seen" instead of being followed again.
*/
package pathinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/report"
	"github.com/spf13/afero"
)

// DefaultMaxEntries is how many directory entry names are listed before
// the rest are summarised as "and K more".
const DefaultMaxEntries = 6

// Config contains describer options.
type Config struct {
	// MaxEntries caps the listed directory entry names. Zero selects
	// DefaultMaxEntries.
	MaxEntries int
}

// PathError records a filesystem fault hit while describing a path.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Describer writes path descriptions to a report.Writer.
type Describer struct {
	config Config
	fs     SymlinkFs
	w      *report.Writer
	log    logger.Logger
}

// NewDescriber returns a Describer reading from fs. If fs cannot report
// symlinks, every path is treated as a non-link.
func NewDescriber(config Config, fs afero.Fs, w *report.Writer, log logger.Logger) *Describer {
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultMaxEntries
	}
	return &Describer{
		config: config,
		fs:     asSymlinkFs(fs),
		w:      w,
		log:    log,
	}
}

// Describe writes the facts about path, one level deeper than the caller.
func (d *Describer) Describe(path string) error {
	seen := make(map[string]struct{})
	return d.describe(path, seen)
}

// MaybeDescribe describes text if it looks like a filesystem path, that is
// if it contains a forward or backward slash.
func (d *Describer) MaybeDescribe(text string) error {
	if !strings.ContainsAny(text, `/\`) {
		return nil
	}
	return d.Describe(text)
}

// MaybeDescribeList splits text on the platform path list separator and
// prints and describes each element. Text without a separator goes
// straight to MaybeDescribe.
func (d *Describer) MaybeDescribeList(text string) error {
	if !strings.ContainsRune(text, os.PathListSeparator) {
		return d.MaybeDescribe(text)
	}

	return d.w.Nest(func() error {
		for _, elem := range filepath.SplitList(text) {
			d.w.Printf("%q", elem)
			if err := d.MaybeDescribe(elem); err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *Describer) describe(path string, seen map[string]struct{}) error {
	return d.w.Nest(func() error {
		d.log.WithFields(logger.Fields{
			"path":  path,
			"seen":  len(seen),
			"depth": d.w.Depth(),
		}).Trace("Describing path")

		info, _, err := d.fs.LstatIfPossible(path)
		if err != nil {
			d.log.WithFields(logger.Fields{
				"path":  path,
				"error": err,
			}).Trace("Path not found")
			d.w.Line("does not exist")
			return nil
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			return d.describeLink(path, seen)
		case info.IsDir():
			return d.describeDir(path)
		default:
			d.w.Printf("is a file of %d bytes", info.Size())
			return nil
		}
	})
}

func (d *Describer) describeLink(path string, seen map[string]struct{}) error {
	target, err := d.fs.ReadlinkIfPossible(path)
	if err != nil {
		return &PathError{Op: "readlink", Path: path, Err: err}
	}

	d.w.Printf("is a symlink to: %q", target)

	// The raw target is keyed in the link's own directory so equal
	// relative targets in different directories stay distinct.
	joined := target
	if !filepath.IsAbs(target) {
		joined = filepath.Join(filepath.Dir(path), target)
	}
	if _, ok := seen[joined]; ok {
		d.w.Line("already seen")
		return nil
	}
	seen[joined] = struct{}{}

	resolved, err := filepath.Abs(joined)
	if err != nil {
		return &PathError{Op: "abs", Path: joined, Err: err}
	}

	if resolved == target {
		return d.describe(target, seen)
	}

	return d.w.Nest(func() error {
		d.w.Printf("resolves to: %q", resolved)
		if resolved != joined {
			if _, ok := seen[resolved]; ok {
				d.w.Line("already seen")
				return nil
			}
			seen[resolved] = struct{}{}
		}
		return d.describe(resolved, seen)
	})
}

func (d *Describer) describeDir(path string) error {
	names, err := d.readDirNames(path)
	if err != nil {
		return err
	}

	switch len(names) {
	case 0:
		d.w.Line("is an empty directory")
		return nil
	case 1:
		d.w.Printf("is a directory with 1 entry: %s", names[0])
		return nil
	}

	d.w.Printf("is a directory with %d entries:", len(names))
	return d.w.Nest(func() error {
		shown := names
		if len(shown) > d.config.MaxEntries {
			shown = shown[:d.config.MaxEntries]
		}
		line := strings.Join(shown, ", ")
		if more := len(names) - len(shown); more > 0 {
			line += fmt.Sprintf(", and %d more", more)
		}
		d.w.Line(line)
		return nil
	})
}

// readDirNames lists the immediate entries of path, sorted by name.
func (d *Describer) readDirNames(path string) ([]string, error) {
	f, err := d.fs.Open(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, &PathError{Op: "readdir", Path: path, Err: err}
	}
	sort.Strings(names)
	return names, nil
}
