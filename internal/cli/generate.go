package cli

import (
	"strings"

	"github.com/couchapp/couchapp/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	generateApp      string
	generateTemplate string
)

func init() {
	generateCmd.Flags().StringVar(&generateApp, "app", ".", "App directory to generate into")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Template set whose root holds the skeletons; for vendor, the directory to copy")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <kind> <name>",
	Short: "Generate a function inside an app",
	Long: `Generate a function inside an existing app from template skeletons.

Kinds: ` + strings.Join(scaffold.Kinds, ", ") + `

  view      views/<name>/map.js and reduce.js (fails if the view exists)
  function  functions/<name>.js
  spatial   spatial/<name>.js from spatial.js
  vendor    copies the --template directory into vendor/<name>/
  others    <kind>s/<name>.js from <kind>.js, e.g. lists/feed.js

Examples:
  couchapp generate view byDate
  couchapp generate list feed --app blog
  couchapp generate vendor jquery --template ~/src/jquery/dist`,
	Aliases:   []string{"gen"},
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: scaffold.Kinds,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		var name string
		if len(args) == 2 {
			name = args[1]
		}

		result, err := newGenerator().Generate(generateApp, kind, name, generateTemplate)
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), kind, name, result)
		return nil
	},
}
