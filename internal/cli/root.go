// Package cli builds the insight command tree.
package cli

import (
	"embed"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/insightdump/internal/version"
	"github.com/arthur-debert/insightdump/pkg/cobrax/topics"
	"github.com/arthur-debert/insightdump/pkg/config"
	"github.com/arthur-debert/insightdump/pkg/logging"
)

//go:embed topics
var topicsFS embed.FS

// app holds what the global flags set up for every command
type app struct {
	verbosity  int
	configPath string
}

// loadConfig loads the configuration with the given flag overrides applied last
func (a *app) loadConfig(overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.Options{Path: a.configPath, Overrides: overrides})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "insight",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newDumpCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		if set, err := topics.Load(sub, topics.Markdown("auto", 0)); err == nil {
			set.Install(rootCmd)
		}
	}

	return rootCmd
}
