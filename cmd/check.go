package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the working copy has no uncommitted changes",
	Long:  "Detect the active VCS and fail if any tracked file is modified, added, removed or deleted. Untracked files are ignored.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newService().Check()
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
