package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// createCmd creates a bucket, or a directory-marker key inside one.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a bucket or a virtual directory key",
	Long: `Create a bucket, or a virtual directory inside one.

Without --object the bucket is created if absent; an existing bucket is an
unchanged no-op. With --object, the key is normalized to a trailing slash
and an empty directory-marker object is created idempotently.

Examples:
  # Create an empty bucket
  s3state create --bucket mybucket

  # Create a bucket with a virtual directory
  s3state create --bucket mybucket --object my/directory/path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeCreate)
	},
}

func init() {
	addBucketFlag(createCmd)
	addObjectFlag(createCmd, false)

	RootCmd.AddCommand(createCmd)
}
