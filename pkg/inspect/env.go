package inspect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sonemaro/godoctor/pkg/logger"
	"github.com/sonemaro/godoctor/pkg/report"
)

var (
	// envNamePattern selects the variables that influence the go command,
	// cgo, and the tools it runs.
	envNamePattern = regexp.MustCompile(`^(GO|CGO_|PKG_CONFIG|CC$|CXX$|AR$|PATH$|HOME$|TMPDIR$|XDG_)`)

	// secretNamePattern marks credential-like variables. Case-sensitive.
	secretNamePattern = regexp.MustCompile(`API|TOKEN|KEY|SECRET|PASS|SIGNATURE`)

	wordChar = regexp.MustCompile(`\w`)
)

func (i *Inspector) showEnv(w *report.Writer) error {
	var names []string
	values := make(map[string]string)
	for _, kv := range i.host.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !envNamePattern.MatchString(name) {
			continue
		}
		names = append(names, name)
		values[name] = value
	}
	sort.Strings(names)

	i.log.WithFields(logger.Fields{
		"matched": len(names),
	}).Debug("Environment filtered")

	if len(names) == 0 {
		w.Line("Environment variables: none")
		return nil
	}

	w.Line("Environment variables:")
	return w.Nest(func() error {
		for _, name := range names {
			if err := i.showEnvVar(w, name, values[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

// showEnvVar prints one variable. Credential-like names are masked and
// never handed to the path describer.
func (i *Inspector) showEnvVar(w *report.Writer, name, value string) error {
	if secretNamePattern.MatchString(name) {
		w.Printf("%s = %q (cloaked)", name, cloak(value))
		return nil
	}

	w.Printf("%s = %q", name, value)
	return i.desc.MaybeDescribeList(value)
}

func cloak(value string) string {
	return wordChar.ReplaceAllString(value, "*")
}
