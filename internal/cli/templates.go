package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchapp/couchapp/internal/templates"
	"github.com/spf13/cobra"
)

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesPathsCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect available template sets",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List template sets visible through the search path",
	RunE: func(cmd *cobra.Command, args []string) error {
		sets, err := newResolver().Discover()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sets) == 0 {
			fmt.Fprintln(out, "No template sets found. Run 'templates paths' to see where they are searched for.")
			return nil
		}

		for _, s := range sets {
			line := fmt.Sprintf("%-24s %-24s %s", cyan(s.Name), strings.Join(s.Types, ","), s.Dir)
			ok, err := s.Compatible(buildVersion)
			if err != nil {
				line += " " + yellow(err.Error())
			} else if !ok {
				line += " " + yellow("(requires "+s.Meta.Requires+")")
			}
			fmt.Fprintln(out, line)
			if s.Meta.Description != "" {
				fmt.Fprintf(out, "  %s\n", s.Meta.Description)
			}
		}
		return nil
	},
}

var templatesPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the template search roots in precedence order",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, root := range newResolver().Roots() {
			dir := filepath.Join(filepath.Clean(root), templates.Probe(templates.DefaultSet, ""))
			status := yellow("[MISS]")
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				status = green("[ OK ]")
			}
			fmt.Fprintf(out, "%2d. %s %s\n", i+1, status, dir)
		}
		return nil
	},
}
