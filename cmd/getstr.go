package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// getstrCmd downloads an object and prints its content to stdout.
var getstrCmd = &cobra.Command{
	Use:   "getstr",
	Short: "Download an object and print its content",
	Long: `Download an object and print its content to stdout.

No destination file is involved, so no fingerprint comparison applies.

Example:
  s3state getstr --bucket mybucket --object my/key.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeGetString)
	},
}

func init() {
	addBucketFlag(getstrCmd)
	addObjectFlag(getstrCmd, true)
	getstrCmd.Flags().StringVar(&version, "version", "", "Object version id to download")

	RootCmd.AddCommand(getstrCmd)
}
