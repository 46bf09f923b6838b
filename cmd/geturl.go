package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// geturlCmd generates a time-limited download URL for an object.
//
// Note: this action always reports changed=true even though it mutates
// nothing. Downstream idempotence tracking relies on the message text, so
// the behavior is intentional.
var geturlCmd = &cobra.Command{
	Use:   "geturl",
	Short: "Generate a time-limited download URL for an object",
	Long: `Generate a presigned, time-limited download URL for an object.

The outcome always reports changed=true regardless of whether any state
was mutated; callers depending on the message text rely on this.

Example:
  s3state geturl --bucket mybucket --object my/key.txt --expiry 3600`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeGetURL)
	},
}

func init() {
	addBucketFlag(geturlCmd)
	addObjectFlag(geturlCmd, true)
	geturlCmd.Flags().IntVar(&expiry, "expiry", 600, "Lifetime in seconds of the generated URL")

	RootCmd.AddCommand(geturlCmd)
}
