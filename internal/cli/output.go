package cli

import (
	"fmt"
	"io"

	"github.com/couchapp/couchapp/internal/scaffold"
	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func printResult(w io.Writer, kind, name string, result *scaffold.Result) {
	fmt.Fprintf(w, "%s %s %s in %s/\n", green("Created"), kind, cyan(name), result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, yellow("\nWarnings:"))
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}
