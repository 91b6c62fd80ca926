/*
Package report provides the indentation-aware writer every godoctor section
prints through.

Each line is prefixed with the current nesting depth's worth of spaces.
Depth only changes through Nest, which always restores the depth it saw on
entry, whether the nested function returns, fails, or panics:

	w := report.NewWriter(os.Stdout, report.DefaultIndent)
	w.Line("Go executable: /usr/local/go/bin/go")
	w.Nest(func() error {
	    w.Line("is a file of 1234 bytes")
	    return nil
	})

Write failures are sticky: the first one is kept and returned by Err, and
every later write is dropped.
*/
package report

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 4

// Writer prefixes every emitted line with depth*indent spaces.
type Writer struct {
	out    io.Writer
	indent int
	depth  int
	err    error
}

// NewWriter returns a Writer on out. A non-positive indent selects DefaultIndent.
func NewWriter(out io.Writer, indent int) *Writer {
	if indent <= 0 {
		indent = DefaultIndent
	}
	return &Writer{out: out, indent: indent}
}

// Line writes s as one line at the current depth. Embedded newlines start
// new lines, each carrying the same prefix.
func (w *Writer) Line(s string) {
	if w.err != nil {
		return
	}

	prefix := strings.Repeat(" ", w.depth*w.indent)
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		w.err = fmt.Errorf("write report: %w", err)
	}
}

// Printf formats according to format and writes the result with Line.
func (w *Writer) Printf(format string, args ...interface{}) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.Line("")
}

// Nest runs fn one level deeper. The depth in effect before the call is
// restored when fn returns or panics.
func (w *Writer) Nest(fn func() error) error {
	saved := w.depth
	w.depth++
	defer func() { w.depth = saved }()

	return fn()
}

// Depth reports the current nesting depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}
