package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/hrmsync/internal/client/services"
)

type usageError string

func (e usageError) Error() string { return "usage: " + string(e) }

// arg returns the i-th positional argument; "-" and missing ones are empty.
func arg(args []string, i int) string {
	if i >= len(args) || args[i] == "-" {
		return ""
	}
	return args[i]
}

func requireArg(args []string, usage string) (string, error) {
	v := arg(args, 0)
	if v == "" {
		return "", usageError(usage)
	}
	return v, nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printMirror tells the user whether the backend copy followed the local change.
func (a *App) printMirror(m services.Mirror) {
	switch m.Status {
	case services.MirrorApplied:
		fmt.Fprintln(a.out, "Synced with backend")
	case services.MirrorFailed:
		fmt.Fprintln(a.out, "Saved locally, backend sync failed:", m.Err)
	}
}
