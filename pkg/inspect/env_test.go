package inspect

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      []string
		expected string
	}{
		{
			name:     "nothing relevant",
			env:      []string{"EDITOR=vim", "LANG=C", "GITHUB_TOKEN=abc"},
			expected: "Environment variables: none\n",
		},
		{
			name: "filtered and sorted",
			env: []string{
				"HOME=/home/gopher",
				"GOFLAGS=-mod=mod",
				"EDITOR=vim",
				"GOPROXY_TOKEN=ab-cd",
				"CGO_ENABLED=1",
				"CCACHE_DIR=/tmp/ccache",
			},
			expected: "Environment variables:\n" +
				"    CGO_ENABLED = \"1\"\n" +
				"    GOFLAGS = \"-mod=mod\"\n" +
				"    GOPROXY_TOKEN = \"**-**\" (cloaked)\n" +
				"    HOME = \"/home/gopher\"\n" +
				"        is a directory with 1 entry: .profile\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, fs := newTestHost(t, tt.env...)
			writeFile(t, fs, "/home/gopher/.profile", "export GOPATH=$HOME/go\n")
			ins, w, buf := newTestInspector(host)

			require.NoError(t, ins.showEnv(w))

			assert.Equal(t, tt.expected, buf.String())
			assert.Equal(t, 0, w.Depth())
		})
	}
}

func TestShowEnvVar(t *testing.T) {
	tests := []struct {
		name     string
		varName  string
		value    string
		expected string
	}{
		{
			name:     "api key is cloaked",
			varName:  "API_KEY",
			value:    "sk-abcdef",
			expected: "API_KEY = \"**-******\" (cloaked)\n",
		},
		{
			name:     "cloaked path is not described",
			varName:  "GOPRIVATE_KEY",
			value:    "/etc/secret",
			expected: "GOPRIVATE_KEY = \"/***/******\" (cloaked)\n",
		},
		{
			name:     "lowercase names are not secrets",
			varName:  "my_token",
			value:    "abc",
			expected: "my_token = \"abc\"\n",
		},
		{
			name:     "plain value",
			varName:  "GO111MODULE",
			value:    "on",
			expected: "GO111MODULE = \"on\"\n",
		},
		{
			name:     "single path",
			varName:  "GOPATH",
			value:    "/home/gopher/go",
			expected: "GOPATH = \"/home/gopher/go\"\n    is an empty directory\n",
		},
		{
			name:    "path list",
			varName: "PATH",
			value:   "/usr/bin" + string(os.PathListSeparator) + "/missing",
			expected: "PATH = \"/usr/bin" + string(os.PathListSeparator) + "/missing\"\n" +
				"    \"/usr/bin\"\n" +
				"        is a directory with 1 entry: go\n" +
				"    \"/missing\"\n" +
				"        does not exist\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, fs := newTestHost(t)
			require.NoError(t, fs.MkdirAll("/home/gopher/go", 0o755))
			writeFile(t, fs, "/usr/bin/go", "#!")
			writeFile(t, fs, "/etc/secret/x", "x")
			ins, w, buf := newTestInspector(host)

			require.NoError(t, ins.showEnvVar(w, tt.varName, tt.value))

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestEnvNamePattern(t *testing.T) {
	tests := []struct {
		name  string
		match bool
	}{
		{"GOPATH", true},
		{"GOROOT", true},
		{"CGO_CFLAGS", true},
		{"PKG_CONFIG_PATH", true},
		{"CC", true},
		{"CCACHE_DIR", false},
		{"PATH", true},
		{"MANPATH", false},
		{"PATHEXT", false},
		{"XDG_CACHE_HOME", true},
		{"HOME", true},
		{"TMPDIR", true},
		{"EDITOR", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.match, envNamePattern.MatchString(tt.name), tt.name)
	}
}

func TestShowSizes(t *testing.T) {
	host, _ := newTestHost(t)
	ins, w, buf := newTestInspector(host)

	require.NoError(t, ins.showSizes(w))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "math.MaxInt: "))
	assert.Contains(t, lines[0], "indicating")
	assert.True(t, strings.HasPrefix(lines[1], "strconv.IntSize: "))
	assert.True(t, strings.HasSuffix(lines[2], " bytes"))
	assert.True(t, strings.HasSuffix(lines[3], " bytes"))
}

func TestSizeIndication(t *testing.T) {
	assert.Equal(t, "indicating 64-bit", sizeIndication(math.MaxInt64))
	assert.Equal(t, "indicating 32-bit", sizeIndication(math.MaxInt32))
	assert.Equal(t, "not sure what that means", sizeIndication(1<<20))
}
