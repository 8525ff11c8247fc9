// Package flagx lets several config loaders share os.Args: each loader picks
// out only the flags it owns before handing them to its own flag.FlagSet.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the allowed flags of args, with their values.
//
// Both "-name value" and "-name=value" are recognized, and the double-dash
// spelling "--name" matches an allowed "-name" the same way the flag package
// treats them as equivalent. A value is taken from the next token only when
// that token does not itself start with '-'. Scanning stops at "--".
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[canonical(f)] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		if !allowed[canonical(name)] {
			continue
		}

		out = append(out, arg)
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

func canonical(name string) string {
	return "-" + strings.TrimLeft(name, "-")
}

// ConfigPath returns the JSON config path given with -c or -config in args,
// or "" when neither is present. The last occurrence wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// JsonConfigFlags is ConfigPath over the process arguments.
func JsonConfigFlags() string {
	return ConfigPath(os.Args[1:])
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
