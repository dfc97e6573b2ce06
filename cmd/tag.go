package cmd

import (
	"github.com/spf13/cobra"
)

var (
	tagSign    bool
	tagMessage string
	tagYes     bool
)

var tagCmd = &cobra.Command{
	Use:   "tag NAME",
	Short: "Create a tag at the current position",
	Long: "Create a tag named NAME. A message makes it an annotated tag where the " +
		"VCS supports the distinction; --sign requests a signed tag and fails on a " +
		"VCS without that capability. Defaults for both come from the config file.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newConfig()
		if !cmd.Flags().Changed("sign") {
			tagSign = cfg.SignTags()
		}
		if !cmd.Flags().Changed("message") {
			tagMessage = cfg.TagMessage()
		}

		svc := newService()
		if tagYes {
			svc.ConfirmFn = nil
		}
		return svc.Tag(tagSign, args[0], tagMessage)
	},
}

func init() {
	tagCmd.Flags().BoolVar(&tagSign, "sign", false, "Create a signed tag")
	tagCmd.Flags().StringVarP(&tagMessage, "message", "m", "", "Tag annotation message")
	tagCmd.Flags().BoolVarP(&tagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(tagCmd)
}
