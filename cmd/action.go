package cmd

import (
	"context"
	"fmt"

	"s3state/core/config"
	"s3state/core/logger"
	"s3state/core/reconcile"
	"s3state/core/storage"
	"s3state/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Shared action flags. One command runs per process, so the mode commands
// can share a single set of bound variables.
var (
	bucket      string
	object      string
	version     string
	src         string
	dest        string
	overwrite   string
	retries     int
	expiry      int
	metadataRaw string
	encryptObj  bool
)

// addBucketFlag registers the bucket flag required by every mode.
func addBucketFlag(c *cobra.Command) {
	c.Flags().StringVar(&bucket, "bucket", "", "Bucket name (required)")
	_ = c.MarkFlagRequired("bucket")
}

// addObjectFlag registers the object key flag.
func addObjectFlag(c *cobra.Command, required bool) {
	c.Flags().StringVar(&object, "object", "", "Object key inside the bucket")
	if required {
		_ = c.MarkFlagRequired("object")
	}
}

// runAction builds the immutable request from the parsed flags, runs the
// engine, and reports the single terminal outcome. All dynamic coercion
// (overwrite policy, metadata string, ~ expansion) happens here, before the
// core ever sees the request.
func runAction(mode reconcile.Mode) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithInvocationID(l)
	defer func() { _ = l.Sync() }()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	req := reconcile.Request{
		Mode:          mode,
		Bucket:        bucket,
		Key:           utils.ExpandPath(object),
		VersionID:     version,
		Source:        utils.ExpandPath(src),
		Dest:          utils.ExpandPath(dest),
		Overwrite:     reconcile.ParseOverwritePolicy(overwrite),
		Retries:       retries,
		ExpirySeconds: expiry,
		Metadata:      utils.ParseMetadata(metadataRaw),
		Encrypt:       encryptObj,
		Region:        cfg.Storage.EffectiveRegion(),
	}

	engine := reconcile.New(client, l)
	out, err := engine.Run(context.Background(), req)
	if err != nil {
		return err
	}

	fields := []zap.Field{zap.Bool("changed", out.Changed)}
	if out.URL != "" {
		fields = append(fields, zap.String("url", out.URL))
	}
	l.Info(out.Message, fields...)

	if out.Contents != "" {
		fmt.Print(out.Contents)
	}
	return nil
}
