package reconcile

import (
	"context"
	"fmt"
	"strings"

	"s3state/core/storage"

	"go.uber.org/zap"
)

// create reconciles bucket creation. Without a key it idempotently ensures
// the bucket. With a key, the key is normalized to a trailing slash and an
// empty directory-marker object is ensured at that key.
func (e *Engine) create(ctx context.Context, req Request) (*Outcome, error) {
	bucketExists, err := e.client.BucketExists(ctx, req.Bucket)
	if err != nil {
		return nil, err
	}

	if req.Key == "" {
		if bucketExists {
			return &Outcome{Changed: false, Message: "bucket already exists"}, nil
		}
		if err := e.client.CreateBucket(ctx, req.Bucket, req.Region); err != nil {
			return nil, err
		}
		return &Outcome{Changed: true, Message: "bucket created successfully"}, nil
	}

	dirKey := req.Key
	if !strings.HasSuffix(dirKey, "/") {
		dirKey += "/"
	}

	if !bucketExists {
		if err := e.client.CreateBucket(ctx, req.Bucket, req.Region); err != nil {
			return nil, err
		}
		return e.createDirKey(ctx, req.Bucket, dirKey)
	}

	keyExists, err := e.client.ObjectExists(ctx, req.Bucket, dirKey, "")
	if err != nil {
		return nil, err
	}
	if keyExists {
		return &Outcome{
			Changed: false,
			Message: fmt.Sprintf("bucket %s and key %s already exist", req.Bucket, req.Key),
		}, nil
	}
	return e.createDirKey(ctx, req.Bucket, dirKey)
}

func (e *Engine) createDirKey(ctx context.Context, bucket, dirKey string) (*Outcome, error) {
	if err := e.client.CreateEmptyObject(ctx, bucket, dirKey); err != nil {
		return nil, err
	}
	return &Outcome{
		Changed: true,
		Message: fmt.Sprintf("virtual directory %s created in bucket %s", dirKey, bucket),
	}, nil
}

// deleteBucket drains every key from the bucket and then removes the bucket
// itself; the store has no native force-delete for non-empty buckets.
//
// The drain is bulk and non-transactional: a failure mid-way leaves the
// bucket with the keys deleted so far, and nothing is rolled back.
func (e *Engine) deleteBucket(ctx context.Context, req Request) (*Outcome, error) {
	bucketExists, err := e.client.BucketExists(ctx, req.Bucket)
	if err != nil {
		return nil, err
	}
	if !bucketExists {
		return nil, fail(storage.ErrBucketNotFound, fmt.Sprintf("bucket %s does not exist", req.Bucket))
	}

	keys, err := e.client.ListObjectKeys(ctx, req.Bucket)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := e.client.DeleteObject(ctx, req.Bucket, key); err != nil {
			return nil, err
		}
	}
	e.log.Debug("drained bucket", zap.String("bucket", req.Bucket), zap.Int("keys", len(keys)))

	if err := e.client.DeleteBucket(ctx, req.Bucket); err != nil {
		return nil, err
	}
	return &Outcome{
		Changed: true,
		Message: fmt.Sprintf("bucket %s and all keys have been deleted", req.Bucket),
	}, nil
}

// deleteObject removes a single object. Deleting from a nonexistent bucket
// is an error, not a no-op.
func (e *Engine) deleteObject(ctx context.Context, req Request) (*Outcome, error) {
	bucketExists, err := e.client.BucketExists(ctx, req.Bucket)
	if err != nil {
		return nil, err
	}
	if !bucketExists {
		return nil, fail(storage.ErrBucketNotFound, fmt.Sprintf("bucket %s does not exist", req.Bucket))
	}

	if err := e.client.DeleteObject(ctx, req.Bucket, req.Key); err != nil {
		return nil, err
	}
	return &Outcome{
		Changed: true,
		Message: fmt.Sprintf("object %s deleted from bucket %s", req.Key, req.Bucket),
	}, nil
}

// getURL generates a time-limited retrieval URL for an existing object.
//
// The outcome always reports changed=true even though nothing mutates.
// Callers track idempotence by message text and depend on this, so the
// quirk is preserved deliberately rather than fixed.
func (e *Engine) getURL(ctx context.Context, req Request) (*Outcome, error) {
	if err := e.requireRemote(ctx, req); err != nil {
		return nil, err
	}

	url, err := e.client.PresignedGetURL(ctx, req.Bucket, req.Key, req.Expiry())
	if err != nil {
		return nil, err
	}
	return &Outcome{Changed: true, Message: "download url generated", URL: url}, nil
}
