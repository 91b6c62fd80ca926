package inspect

import (
	"strings"

	"github.com/sonemaro/godoctor/pkg/report"
	"golang.org/x/text/language"
)

// localeCategories are the POSIX categories that setlocale consults.
var localeCategories = []string{
	"LC_COLLATE",
	"LC_CTYPE",
	"LC_MESSAGES",
	"LC_MONETARY",
	"LC_NUMERIC",
	"LC_TIME",
}

func (i *Inspector) showLocale(w *report.Writer) error {
	i.showLocaleVar(w, "LC_ALL")

	for _, category := range localeCategories {
		i.showLocaleVar(w, category)
		effective := i.effectiveLocale(category)
		_ = w.Nest(func() error {
			w.Printf("effective: %q, %s", effective, describeTag(effective))
			return nil
		})
	}

	i.showLocaleVar(w, "LANG")
	i.showLocaleVar(w, "LANGUAGE")
	return nil
}

func (i *Inspector) showLocaleVar(w *report.Writer, name string) {
	v, ok := i.host.getenv(name)
	if !ok {
		w.Printf("%s: (unset)", name)
		return
	}
	w.Printf("%s: %q", name, v)
}

// effectiveLocale applies the POSIX precedence LC_ALL, then the category,
// then LANG, then "C".
func (i *Inspector) effectiveLocale(category string) string {
	for _, name := range []string{"LC_ALL", category, "LANG"} {
		if v, ok := i.host.getenv(name); ok && v != "" {
			return v
		}
	}
	return "C"
}

// localeTag parses the language part of a POSIX locale name such as
// "pt_BR.UTF-8@euro" as a BCP 47 tag.
func localeTag(locale string) (language.Tag, error) {
	name, _, _ := strings.Cut(locale, ".")
	name, _, _ = strings.Cut(name, "@")
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

func describeTag(locale string) string {
	tag, err := localeTag(locale)
	if err != nil {
		return "no language tag"
	}
	return "language tag " + tag.String()
}
