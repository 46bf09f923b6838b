package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// delobjCmd deletes a single object from a bucket.
var delobjCmd = &cobra.Command{
	Use:   "delobj",
	Short: "Delete a single object from a bucket",
	Long: `Delete a single object from a bucket.

The bucket must exist; deleting from a nonexistent bucket is an error,
not a no-op.

Example:
  s3state delobj --bucket mybucket --object my/key.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeDeleteObject)
	},
}

func init() {
	addBucketFlag(delobjCmd)
	addObjectFlag(delobjCmd, true)

	RootCmd.AddCommand(delobjCmd)
}
