package pathinfo

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// SymlinkFs is an afero.Fs that can report and read symbolic links without
// following them. afero.OsFs satisfies it.
type SymlinkFs interface {
	afero.Fs
	afero.Lstater
	afero.LinkReader
}

// basicSymlinkFs adapts a plain afero.Fs that has no notion of symlinks.
type basicSymlinkFs struct {
	afero.Fs
}

func asSymlinkFs(fs afero.Fs) SymlinkFs {
	if sf, ok := fs.(SymlinkFs); ok {
		return sf
	}
	return &basicSymlinkFs{Fs: fs}
}

func (fs *basicSymlinkFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	if l, ok := fs.Fs.(afero.Lstater); ok {
		return l.LstatIfPossible(name)
	}
	info, err := fs.Fs.Stat(name)
	return info, false, err
}

func (fs *basicSymlinkFs) ReadlinkIfPossible(name string) (string, error) {
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

// MemSymlinkFs layers a symlink table over another afero.Fs, typically
// afero.NewMemMapFs. Links are not followed by the underlying Fs; only
// LstatIfPossible and ReadlinkIfPossible know about them.
type MemSymlinkFs struct {
	afero.Fs
	mu    sync.RWMutex
	links map[string]string
}

// NewMemSymlinkFs wraps fs with an empty symlink table.
func NewMemSymlinkFs(fs afero.Fs) *MemSymlinkFs {
	return &MemSymlinkFs{
		Fs:    fs,
		links: make(map[string]string),
	}
}

// SymlinkIfPossible records newname as a link whose raw target is oldname.
func (fs *MemSymlinkFs) SymlinkIfPossible(oldname, newname string) error {
	newname = filepath.Clean(newname)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if _, ok := fs.links[newname]; ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: os.ErrExist}
	}
	if _, err := fs.Fs.Stat(newname); err == nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: os.ErrExist}
	}
	if err := fs.Fs.MkdirAll(filepath.Dir(newname), 0o755); err != nil {
		return err
	}
	fs.links[newname] = oldname
	return nil
}

// ReadlinkIfPossible returns the raw target recorded for name.
func (fs *MemSymlinkFs) ReadlinkIfPossible(name string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	if target, ok := fs.links[filepath.Clean(name)]; ok {
		return target, nil
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: os.ErrInvalid}
}

// LstatIfPossible reports links from the table and defers everything else
// to the wrapped Fs.
func (fs *MemSymlinkFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	clean := filepath.Clean(name)

	fs.mu.RLock()
	target, ok := fs.links[clean]
	fs.mu.RUnlock()
	if ok {
		return linkInfo{name: filepath.Base(clean), target: target}, true, nil
	}

	info, err := fs.Fs.Stat(clean)
	return info, false, err
}

// Open lists link names alongside regular entries when name is a directory.
func (fs *MemSymlinkFs) Open(name string) (afero.File, error) {
	f, err := fs.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil || !info.IsDir() {
		return f, err
	}
	return &linkDir{File: f, extra: fs.linksIn(filepath.Clean(name))}, nil
}

func (fs *MemSymlinkFs) linksIn(dir string) []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var names []string
	for link := range fs.links {
		if filepath.Dir(link) == dir {
			names = append(names, filepath.Base(link))
		}
	}
	return names
}

// linkDir appends link names to a directory listing.
type linkDir struct {
	afero.File
	extra []string
}

func (d *linkDir) Readdirnames(n int) ([]string, error) {
	names, err := d.File.Readdirnames(n)
	if err != nil {
		return names, err
	}
	if n <= 0 {
		names = append(names, d.extra...)
		d.extra = nil
	}
	return names, nil
}

type linkInfo struct {
	name   string
	target string
}

func (i linkInfo) Name() string       { return i.name }
func (i linkInfo) Size() int64        { return int64(len(i.target)) }
func (i linkInfo) Mode() os.FileMode  { return os.ModeSymlink | 0o777 }
func (i linkInfo) ModTime() time.Time { return time.Time{} }
func (i linkInfo) IsDir() bool        { return false }
func (i linkInfo) Sys() interface{}   { return nil }
