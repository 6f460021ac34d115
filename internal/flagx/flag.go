// Package flagx parses the handful of flags shared by both binaries without
// claiming the global flag set, so each config package can parse its own
// flags from the same os.Args independently.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
// Both "-f value" and "-f=value" forms are recognised; a following token that
// starts with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := allowed[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, known := allowed[arg]; !known {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// stringFlag parses a single string flag registered under several aliases.
// The last occurrence wins.
func stringFlag(aliases ...string) string {
	var value string

	dashed := make([]string, 0, len(aliases))
	for _, a := range aliases {
		dashed = append(dashed, "-"+a)
	}

	fs := flag.NewFlagSet(aliases[0], flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	for _, a := range aliases {
		fs.StringVar(&value, a, "", "")
	}
	_ = fs.Parse(FilterArgs(os.Args[1:], dashed))

	return value
}

// ConfigFileFlags returns the JSON config path given via -c or -config, or "".
func ConfigFileFlags() string {
	return stringFlag("config", "c")
}

// EnvFileFlags returns the dotenv path given via -env, or "".
func EnvFileFlags() string {
	return stringFlag("env")
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
