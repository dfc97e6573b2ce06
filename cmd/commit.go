package cmd

import (
	"github.com/markhallen/bumpvcs/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	commitMessage  string
	currentVersion string
	newVersion     string
)

var commitCmd = &cobra.Command{
	Use:   "commit [PATH...]",
	Short: "Stage the given paths and commit them",
	Long: "Stage each PATH (where the VCS has a staging step) and record a commit. " +
		"The current and new version strings are exported to commit hooks as " +
		"BUMPVERSION_CURRENT_VERSION and BUMPVERSION_NEW_VERSION.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := vcs.CommitContext{
			CurrentVersion: currentVersion,
			NewVersion:     newVersion,
		}
		return newService().Commit(commitMessage, ctx, args)
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message")
	commitCmd.Flags().StringVar(&currentVersion, "current-version", "", "Version string before the bump")
	commitCmd.Flags().StringVar(&newVersion, "new-version", "", "Version string after the bump")
	commitCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(commitCmd)
}
