package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/couchapp/couchapp/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

type versionInfo struct {
	Version string   `json:"version"`
	Commit  string   `json:"commit"`
	Date    string   `json:"date"`
	Go      string   `json:"go"`
	OS      string   `json:"os"`
	Arch    string   `json:"arch"`
	Roots   []string `json:"template_roots"`
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build and template root info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		info := versionInfo{
			Version: buildVersion,
			Commit:  buildCommit,
			Date:    buildDate,
			Go:      runtime.Version(),
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
		}
		if !versionJSON {
			fmt.Fprintf(out, "%s %s (commit %s, built %s, %s %s/%s)\n",
				branding.CLIName(), info.Version, info.Commit, info.Date, info.Go, info.OS, info.Arch)
			return nil
		}

		info.Roots = newResolver().Roots()
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}
