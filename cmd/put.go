package cmd

import (
	"s3state/core/reconcile"

	"github.com/spf13/cobra"
)

// putCmd uploads a local file to an object key.
var putCmd = &cobra.Command{
	Use:   "put",
	Short: "Upload a local file to an object key",
	Long: `Upload a local file to an object key, creating the bucket if needed.

If the remote object already exists, its content fingerprint is compared to
the local file and the overwrite policy decides whether to re-upload.

Examples:
  # Simple upload
  s3state put --bucket mybucket --object my/key.txt --src /usr/local/myfile.txt

  # Upload with metadata and server-side encryption
  s3state put --bucket mybucket --object my/key.txt --src ./file \
    --metadata 'Content-Encoding=gzip,Cache-Control=no-cache' --encrypt

  # Only upload when content differs
  s3state put --bucket mybucket --object my/key.txt --src ./file --overwrite different`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(reconcile.ModePut)
	},
}

func init() {
	addBucketFlag(putCmd)
	addObjectFlag(putCmd, true)
	putCmd.Flags().StringVar(&src, "src", "", "Local source file path (required)")
	_ = putCmd.MarkFlagRequired("src")
	putCmd.Flags().StringVar(&overwrite, "overwrite", "always", "Overwrite policy: always, never, or different")
	putCmd.Flags().StringVar(&metadataRaw, "metadata", "", "Object metadata as 'key=value,key=value'")
	putCmd.Flags().BoolVar(&encryptObj, "encrypt", false, "Request server-side encryption")
	putCmd.Flags().IntVar(&expiry, "expiry", 600, "Lifetime in seconds of the returned download URL")

	RootCmd.AddCommand(putCmd)
}
