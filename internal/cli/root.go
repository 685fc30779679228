package cli

import (
	"fmt"
	"os"

	"github.com/couchapp/couchapp/internal/branding"
	"github.com/couchapp/couchapp/internal/config"
	"github.com/couchapp/couchapp/internal/scaffold"
	"github.com/couchapp/couchapp/internal/templates"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates CouchApp directories from template sets and generates
views, lists, shows, filters, updates, spatial indexes and vendor packages inside them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		l, err := newLogger(verbose || config.Verbose())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging, including every template search path probed")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	}
	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newResolver() *templates.Resolver {
	return templates.NewResolver(
		templates.WithLogger(logger),
		templates.WithRoots(func() []string {
			return templates.PlatformRootsWith(config.SearchPaths())
		}),
	)
}

func newGenerator() *scaffold.Generator {
	return scaffold.New(
		scaffold.WithResolver(newResolver()),
		scaffold.WithLogger(logger),
	)
}
