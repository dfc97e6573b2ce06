package cmd

import (
	"github.com/markhallen/bumpvcs/internal/config"
	"github.com/markhallen/bumpvcs/internal/logger"
	"github.com/markhallen/bumpvcs/internal/ops"
	"github.com/markhallen/bumpvcs/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	versionStr = "dev"
)

func SetVersion(v string) {
	versionStr = v
}

var rootCmd = &cobra.Command{
	Use:          "bumpvcs",
	Short:        "Drive the version control system behind a version bump",
	Long:         "Check, commit, tag and inspect the current working copy through whichever supported VCS (Git, Mercurial or Subversion) is in use.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetVerbose()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed and verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}

func newService() *ops.Service {
	return &ops.Service{
		ConfirmFn: ui.Confirm,
	}
}

func newConfig() *config.Config {
	return config.New("")
}
