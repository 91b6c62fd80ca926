package commands

import (
	"strings"

	"github.com/spf13/pflag"
)

// splitArgs separates the tokens flags knows about from everything else.
// Unknown dash-prefixed tokens are kept with the section names so the
// driver can report them. Every godoctor flag is a switch, so no token is
// consumed as a flag value. Tokens after "--" are always names.
func splitArgs(flags *pflag.FlagSet, args []string) (known, names []string) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return known, append(names, args[i+1:]...)
		case isKnownFlag(flags, arg):
			known = append(known, arg)
		default:
			names = append(names, arg)
		}
	}
	return known, names
}

func isKnownFlag(flags *pflag.FlagSet, arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}

	if strings.HasPrefix(arg, "--") {
		name, _, _ := strings.Cut(arg[2:], "=")
		return name != "" && flags.Lookup(name) != nil
	}

	// A shorthand group such as -vv is known only if every letter is.
	for _, c := range arg[1:] {
		if c > 127 || flags.ShorthandLookup(string(c)) == nil {
			return false
		}
	}
	return true
}
