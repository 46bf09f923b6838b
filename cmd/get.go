package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// getCmd downloads an object to a local destination file.
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Download an object to a local file",
	Long: `Download an object to a local destination file.

If the destination already exists, its content fingerprint is compared to
the remote object and the overwrite policy decides whether to re-download.
Transient network failures during the transfer are retried up to the
configured budget.

Examples:
  # Simple download
  s3state get --bucket mybucket --object my/key.txt --dest /usr/local/myfile.txt

  # Download only if content differs
  s3state get --bucket mybucket --object my/key.txt --dest ./file --overwrite different

  # Download a specific object version
  s3state get --bucket mybucket --object my/key.txt --version 48c9ee... --dest ./file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModeGet)
	},
}

func init() {
	addBucketFlag(getCmd)
	addObjectFlag(getCmd, true)
	getCmd.Flags().StringVar(&dest, "dest", "", "Local destination file path (required)")
	_ = getCmd.MarkFlagRequired("dest")
	getCmd.Flags().StringVar(&version, "version", "", "Object version id to download")
	getCmd.Flags().StringVar(&overwrite, "overwrite", "always", "Overwrite policy: always, never, or different")
	getCmd.Flags().IntVar(&retries, "retries", 0, "Retries on recoverable download failure")

	RootCmd.AddCommand(getCmd)
}
