package inspect

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/sonemaro/godoctor/pkg/report"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

func (i *Inspector) showEncoding(w *report.Writer) error {
	w.Printf("utf8.MaxRune: %d, as all Go builds have", utf8.MaxRune)
	w.Line(`Source encoding: "UTF-8"`)
	w.Line("Strings are byte sequences, UTF-8 by convention.")

	name, value := i.ctypeLocale()
	codeset := localeCodeset(value)
	switch {
	case value == "":
		w.Line("Locale codeset: none, no locale is set")
	case codeset == "":
		w.Printf("Locale codeset: none in %s=%q", name, value)
	default:
		w.Printf("Locale codeset: %q, from %s", codeset, name)
		_ = w.Nest(func() error {
			if canonical, ok := canonicalEncoding(codeset); ok {
				w.Printf("canonical name: %q", canonical)
			} else {
				w.Line("not a known encoding")
			}
			return nil
		})
	}

	w.Printf("Filesystem encoding: %s", filesystemEncoding(runtime.GOOS))
	if i.host.IsTerminal() {
		w.Line("Standard output is a terminal.")
	} else {
		w.Line("Standard output is not a terminal.")
	}
	return nil
}

// ctypeLocale returns the variable and value that decide LC_CTYPE.
func (i *Inspector) ctypeLocale() (string, string) {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v, ok := i.host.getenv(name); ok && v != "" {
			return name, v
		}
	}
	return "", ""
}

// localeCodeset extracts "UTF-8" from "en_US.UTF-8@euro".
func localeCodeset(locale string) string {
	_, rest, ok := strings.Cut(locale, ".")
	if !ok {
		return ""
	}
	codeset, _, _ := strings.Cut(rest, "@")
	return codeset
}

// canonicalEncoding maps an encoding label to its IANA name, falling back
// to the WHATWG label set for spellings like "utf8".
func canonicalEncoding(label string) (string, bool) {
	var enc encoding.Encoding
	if e, err := ianaindex.IANA.Encoding(label); err == nil && e != nil {
		enc = e
	} else if e, err := htmlindex.Get(label); err == nil {
		enc = e
	}
	if enc == nil {
		return "", false
	}

	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return name, true
	}
	if name, err := htmlindex.Name(enc); err == nil {
		return name, true
	}
	return "", false
}

func filesystemEncoding(goos string) string {
	if goos == "windows" {
		return "UTF-16, converted to and from UTF-8 by the os package"
	}
	return "raw bytes, UTF-8 by convention"
}
