package cli

import (
	"fmt"

	"github.com/couchapp/couchapp/internal/appdoc"
	"github.com/couchapp/couchapp/internal/branding"
	"github.com/couchapp/couchapp/internal/config"
	"github.com/spf13/cobra"
)

var (
	initTemplate string
	initEmpty    bool
)

func init() {
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "", "Template set to use, e.g. mytmpl or vuejs/myvue (default from config, else \"default\")")
	initCmd.Flags().BoolVar(&initEmpty, "empty", false, "Create a bare app without copying any template")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new app",
	Long: `Create a new app directory.

With --empty the directory must be absent or empty and only the standard tree
(_attachments, filters, lists, shows, updates, views) is created. Otherwise the
template set's app/ and vendor/ payloads are merged into the directory.

Examples:
  couchapp init blog
  couchapp init blog --template vuejs/myvue
  couchapp init blog --empty`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}

		g := newGenerator()
		if initEmpty {
			if err := g.InitBasic(path); err != nil {
				return err
			}
		} else {
			tmpl := initTemplate
			if tmpl == "" {
				tmpl = config.DefaultTemplate()
			}
			if err := g.InitTemplate(path, tmpl); err != nil {
				return err
			}
		}

		doc, err := appdoc.Open(path)
		if err != nil {
			return err
		}
		id, err := doc.DocID()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s app %s (%s)\n", green("Created"), cyan(path), id)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Run '%s generate view <name> --app %s' to add a view\n", branding.CLIName(), path)
		fmt.Fprintf(out, "  2. Edit %s to configure push targets\n", appdoc.RCFile)
		return nil
	},
}
