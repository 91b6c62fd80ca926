package pathinfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/report"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements logger.Logger interface for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func setupMemFs(t *testing.T) *MemSymlinkFs {
	t.Helper()
	fs := NewMemSymlinkFs(afero.NewMemMapFs())

	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/d/file.txt", []byte("hello"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/one/only.go", []byte("package only"), 0o644))

	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("/ten/f%02d", i)
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("/six/s%d", i)
		require.NoError(t, afero.WriteFile(fs, name, []byte("x"), 0o644))
	}

	return fs
}

func newTestDescriber(fs afero.Fs) (*Describer, *bytes.Buffer, *mockLogger) {
	var buf bytes.Buffer
	log := &mockLogger{}
	w := report.NewWriter(&buf, report.DefaultIndent)
	return NewDescriber(Config{}, fs, w, log), &buf, log
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*testing.T, *MemSymlinkFs)
		path     string
		expected string
	}{
		{
			name:     "missing path",
			path:     "/no/such/path-xyz",
			expected: "    does not exist\n",
		},
		{
			name:     "regular file",
			path:     "/d/file.txt",
			expected: "    is a file of 5 bytes\n",
		},
		{
			name:     "empty directory",
			path:     "/empty",
			expected: "    is an empty directory\n",
		},
		{
			name:     "single entry directory",
			path:     "/one",
			expected: "    is a directory with 1 entry: only.go\n",
		},
		{
			name: "relative symlink to file",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("file.txt", "/d/link"))
			},
			path: "/d/link",
			expected: "    is a symlink to: \"file.txt\"\n" +
				"        resolves to: \"/d/file.txt\"\n" +
				"            is a file of 5 bytes\n",
		},
		{
			name: "absolute symlink to directory",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("/one", "/links/one"))
			},
			path: "/links/one",
			expected: "    is a symlink to: \"/one\"\n" +
				"        is a directory with 1 entry: only.go\n",
		},
		{
			name: "dangling symlink",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("/nowhere", "/d/dangling"))
			},
			path: "/d/dangling",
			expected: "    is a symlink to: \"/nowhere\"\n" +
				"        does not exist\n",
		},
		{
			name: "symlink to itself",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("/loop/self", "/loop/self"))
			},
			path: "/loop/self",
			expected: "    is a symlink to: \"/loop/self\"\n" +
				"        is a symlink to: \"/loop/self\"\n" +
				"        already seen\n",
		},
		{
			name: "relative two element cycle",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("b", "/cyc/a"))
				require.NoError(t, fs.SymlinkIfPossible("a", "/cyc/b"))
			},
			path: "/cyc/a",
			expected: "    is a symlink to: \"b\"\n" +
				"        resolves to: \"/cyc/b\"\n" +
				"            is a symlink to: \"a\"\n" +
				"                resolves to: \"/cyc/a\"\n" +
				"                    is a symlink to: \"b\"\n" +
				"                    already seen\n",
		},
		{
			name: "same relative target in different directories",
			setup: func(t *testing.T, fs *MemSymlinkFs) {
				require.NoError(t, fs.SymlinkIfPossible("n", "/p/a"))
				require.NoError(t, fs.SymlinkIfPossible("/q/a", "/p/n"))
				require.NoError(t, fs.SymlinkIfPossible("n", "/q/a"))
				require.NoError(t, afero.WriteFile(fs, "/q/n", []byte("data"), 0o644))
			},
			path: "/p/a",
			expected: "    is a symlink to: \"n\"\n" +
				"        resolves to: \"/p/n\"\n" +
				"            is a symlink to: \"/q/a\"\n" +
				"                is a symlink to: \"n\"\n" +
				"                    resolves to: \"/q/n\"\n" +
				"                        is a file of 4 bytes\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" {
				t.Skip("expected output uses slash-separated absolute paths")
			}

			fs := setupMemFs(t)
			if tt.setup != nil {
				tt.setup(t, fs)
			}
			d, buf, log := newTestDescriber(fs)

			require.NoError(t, d.Describe(tt.path))
			assert.Equal(t, tt.expected, buf.String())
			assert.Equal(t, 0, d.w.Depth())
			assert.NotEmpty(t, log.logs)
		})
	}
}

func TestDescribeDirectoryListing(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		count      int
		wantSuffix string
		prefix     string
	}{
		{name: "ten entries", path: "/ten", count: 10, wantSuffix: ", and 4 more", prefix: "f"},
		{name: "exactly six entries", path: "/six", count: 6, prefix: "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf, _ := newTestDescriber(setupMemFs(t))

			require.NoError(t, d.Describe(tt.path))

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Len(t, lines, 2)
			assert.Equal(t, fmt.Sprintf("    is a directory with %d entries:", tt.count), lines[0])

			listing := strings.TrimPrefix(lines[1], "        ")
			if tt.wantSuffix != "" {
				assert.True(t, strings.HasSuffix(listing, tt.wantSuffix), listing)
				listing = strings.TrimSuffix(listing, tt.wantSuffix)
			} else {
				assert.NotContains(t, listing, "more")
			}

			names := strings.Split(listing, ", ")
			assert.Len(t, names, DefaultMaxEntries)
			unique := make(map[string]struct{})
			for _, name := range names {
				assert.True(t, strings.HasPrefix(name, tt.prefix), name)
				unique[name] = struct{}{}
			}
			assert.Len(t, unique, DefaultMaxEntries)
		})
	}
}

func TestDescribeMaxEntries(t *testing.T) {
	var buf bytes.Buffer
	w := report.NewWriter(&buf, report.DefaultIndent)
	d := NewDescriber(Config{MaxEntries: 3}, setupMemFs(t), w, logger.NewNop())

	require.NoError(t, d.Describe("/ten"))
	assert.Contains(t, buf.String(), ", and 7 more")
}

func TestDescribeRealSymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.Symlink(b, a))
	require.NoError(t, os.Symlink(a, b))

	describeOnce := func() string {
		d, buf, _ := newTestDescriber(afero.NewOsFs())
		require.NoError(t, d.Describe(a))
		return buf.String()
	}

	first := describeOnce()
	second := describeOnce()

	assert.Contains(t, first, "already seen")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(first, "already seen"))
}

func TestDescribeRealDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module x\n"), 0o644))

	d, buf, _ := newTestDescriber(afero.NewOsFs())
	require.NoError(t, d.Describe(dir))

	assert.Equal(t, "    is a directory with 1 entry: go.mod\n", buf.String())
}

func TestDescribeWithoutSymlinkSupport(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/f", []byte("abc"), 0o644))

	d, buf, _ := newTestDescriber(fs)
	require.NoError(t, d.Describe("/f"))

	assert.Equal(t, "    is a file of 3 bytes\n", buf.String())
}

func TestMaybeDescribe(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "plain word", text: "auto", expected: ""},
		{name: "url-ish value without slash", text: "direct", expected: ""},
		{name: "forward slash", text: "/no/such/path-xyz", expected: "    does not exist\n"},
		{name: "backslash", text: `C:\no\such`, expected: "    does not exist\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf, _ := newTestDescriber(setupMemFs(t))
			require.NoError(t, d.MaybeDescribe(tt.text))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestMaybeDescribeList(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("expected output uses slash-separated absolute paths")
	}

	d, buf, _ := newTestDescriber(setupMemFs(t))
	text := strings.Join([]string{"/d/file.txt", "/missing"}, string(os.PathListSeparator))

	require.NoError(t, d.MaybeDescribeList(text))

	expected := "    \"/d/file.txt\"\n" +
		"        is a file of 5 bytes\n" +
		"    \"/missing\"\n" +
		"        does not exist\n"
	assert.Equal(t, expected, buf.String())
}

func TestMaybeDescribeListSingleValue(t *testing.T) {
	d, buf, _ := newTestDescriber(setupMemFs(t))

	require.NoError(t, d.MaybeDescribeList("/d/file.txt"))
	assert.Equal(t, "    is a file of 5 bytes\n", buf.String())
}

func TestPathError(t *testing.T) {
	err := &PathError{Op: "readlink", Path: "/x", Err: os.ErrInvalid}

	assert.Equal(t, "readlink /x: invalid argument", err.Error())
	assert.ErrorIs(t, err, os.ErrInvalid)
}
