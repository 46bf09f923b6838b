package reconcile

import (
	"context"
	"fmt"
	"os"

	"s3state/core/fingerprint"
	"s3state/core/retry"
	"s3state/core/storage"

	"go.uber.org/zap"
)

// Engine decides, per invocation, whether a transfer is necessary and
// performs it. It holds no state between invocations; every Run observes
// the remote side fresh.
type Engine struct {
	client storage.Client
	log    *zap.Logger
}

// New creates an engine over the given store client.
func New(client storage.Client, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{client: client, log: log}
}

// Run executes one reconciliation invocation and returns its single
// terminal outcome. Parameter validation happens before any store call.
func (e *Engine) Run(ctx context.Context, req Request) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Mode {
	case ModeGet:
		return e.get(ctx, req)
	case ModeGetString:
		return e.getString(ctx, req)
	case ModePut:
		return e.put(ctx, req)
	case ModeCreate:
		return e.create(ctx, req)
	case ModeDelete:
		return e.deleteBucket(ctx, req)
	case ModeDeleteObject:
		return e.deleteObject(ctx, req)
	case ModeGetURL:
		return e.getURL(ctx, req)
	default:
		return nil, fmt.Errorf("unsupported mode %q", req.Mode)
	}
}

// requireRemote fails fast when the target bucket or object is absent.
// The key-not-found message is version-qualified when a version was pinned.
func (e *Engine) requireRemote(ctx context.Context, req Request) error {
	exists, err := e.client.BucketExists(ctx, req.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fail(storage.ErrBucketNotFound, fmt.Sprintf("target bucket %s cannot be found", req.Bucket))
	}

	keyExists, err := e.client.ObjectExists(ctx, req.Bucket, req.Key, req.VersionID)
	if err != nil {
		return err
	}
	if !keyExists {
		if req.VersionID != "" {
			return fail(storage.ErrKeyNotFound, fmt.Sprintf("key %s with version id %s does not exist", req.Key, req.VersionID))
		}
		return fail(storage.ErrKeyNotFound, fmt.Sprintf("key %s does not exist", req.Key))
	}
	return nil
}

// get reconciles a download against a local destination file.
//
// The decision table: an absent destination always transfers; an identical
// pair transfers only under overwrite=always (intentional re-fetch); a
// differing pair transfers unless overwrite=never; an uncomparable remote
// fingerprint is a hard error.
func (e *Engine) get(ctx context.Context, req Request) (*Outcome, error) {
	if err := e.requireRemote(ctx, req); err != nil {
		return nil, err
	}

	if _, err := os.Stat(req.Dest); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// Nothing to compare against, download unconditionally.
		return e.download(ctx, req)
	}

	remoteSum, err := e.client.ObjectFingerprint(ctx, req.Bucket, req.Key, req.VersionID)
	if err != nil {
		return nil, err
	}
	localSum, err := fingerprint.FileDigest(req.Dest)
	if err != nil {
		return nil, err
	}

	e.log.Debug("comparing fingerprints",
		zap.String("bucket", req.Bucket),
		zap.String("key", req.Key),
		zap.String("local", localSum),
		zap.String("remote", remoteSum),
	)

	switch fingerprint.Compare(localSum, remoteSum) {
	case fingerprint.Match:
		if req.Overwrite == OverwriteAlways {
			return e.download(ctx, req)
		}
		return &Outcome{
			Changed: false,
			Message: "local and remote object are identical, ignoring. Use overwrite=always parameter to force.",
		}, nil
	case fingerprint.Mismatch:
		if req.Overwrite == OverwriteNever {
			return &Outcome{
				Changed: false,
				Message: "checksums do not match. Use overwrite parameter to force download.",
			}, nil
		}
		return e.download(ctx, req)
	default:
		return nil, fail(storage.ErrFingerprintUnavailable,
			fmt.Sprintf("object %s was uploaded with multipart, unable to compute checksum", req.Key))
	}
}

// download performs the data transfer with the bounded retry budget.
func (e *Engine) download(ctx context.Context, req Request) (*Outcome, error) {
	err := retry.Do(req.Retries, func() error {
		return e.client.DownloadObject(ctx, req.Bucket, req.Key, req.Dest, req.VersionID)
	})
	if err != nil {
		return nil, err
	}
	return &Outcome{Changed: true, Message: "GET operation complete"}, nil
}

// getString downloads an object and returns its content directly. There is
// no destination file, so no comparison phase applies.
func (e *Engine) getString(ctx context.Context, req Request) (*Outcome, error) {
	if err := e.requireRemote(ctx, req); err != nil {
		return nil, err
	}

	data, err := e.client.DownloadObjectBytes(ctx, req.Bucket, req.Key, req.VersionID)
	if err != nil {
		return nil, err
	}
	return &Outcome{Changed: true, Message: "GET operation complete", Contents: string(data)}, nil
}

// put reconciles an upload from a local source file.
//
// A missing bucket is created and the upload performed unconditionally;
// creation and upload are always paired. An existing remote key goes
// through the same policy matrix as downloads.
func (e *Engine) put(ctx context.Context, req Request) (*Outcome, error) {
	info, err := os.Stat(req.Source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fail(storage.ErrLocalSourceNotFound, "local object for PUT does not exist")
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fail(storage.ErrInvalidSource, "specifying a directory is not a valid source for upload")
	}

	bucketExists, err := e.client.BucketExists(ctx, req.Bucket)
	if err != nil {
		return nil, err
	}
	if !bucketExists {
		if err := e.client.CreateBucket(ctx, req.Bucket, req.Region); err != nil {
			return nil, err
		}
		e.log.Info("created bucket", zap.String("bucket", req.Bucket), zap.String("region", req.Region))
		return e.upload(ctx, req)
	}

	keyExists, err := e.client.ObjectExists(ctx, req.Bucket, req.Key, "")
	if err != nil {
		return nil, err
	}
	if !keyExists {
		return e.upload(ctx, req)
	}

	remoteSum, err := e.client.ObjectFingerprint(ctx, req.Bucket, req.Key, "")
	if err != nil {
		return nil, err
	}
	localSum, err := fingerprint.FileDigest(req.Source)
	if err != nil {
		return nil, err
	}

	switch fingerprint.Compare(localSum, remoteSum) {
	case fingerprint.Match:
		if req.Overwrite == OverwriteAlways {
			return e.upload(ctx, req)
		}
		// No transfer needed; still hand back a fresh retrieval URL.
		url, err := e.client.PresignedGetURL(ctx, req.Bucket, req.Key, req.Expiry())
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Changed: false,
			Message: "local and remote object are identical, ignoring. Use overwrite=always parameter to force.",
			URL:     url,
		}, nil
	case fingerprint.Mismatch:
		if req.Overwrite == OverwriteNever {
			return &Outcome{
				Changed: false,
				Message: "checksums do not match. Use overwrite parameter to force upload.",
			}, nil
		}
		return e.upload(ctx, req)
	default:
		return nil, fail(storage.ErrFingerprintUnavailable,
			fmt.Sprintf("object %s was uploaded with multipart, unable to compute checksum", req.Key))
	}
}

// upload performs the data transfer. Uploads are not retried; a store-level
// copy error fails the invocation immediately.
func (e *Engine) upload(ctx context.Context, req Request) (*Outcome, error) {
	if err := e.client.UploadObject(ctx, req.Bucket, req.Key, req.Source, req.Metadata, req.Encrypt); err != nil {
		return nil, err
	}
	url, err := e.client.PresignedGetURL(ctx, req.Bucket, req.Key, req.Expiry())
	if err != nil {
		return nil, err
	}
	return &Outcome{Changed: true, Message: "PUT operation complete", URL: url}, nil
}
