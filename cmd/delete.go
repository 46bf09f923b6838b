package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// deleteCmd deletes a bucket and every object in it.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a bucket and all of its contents",
	Long: `Delete a bucket and all objects inside it.

Every key is deleted before the bucket itself; the drain is not
transactional, so a failure partway leaves the keys deleted so far.

Example:
  s3state delete --bucket mybucket`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeDelete)
	},
}

func init() {
	addBucketFlag(deleteCmd)

	RootCmd.AddCommand(deleteCmd)
}
