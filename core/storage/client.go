package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/encrypt"
)

// Client defines the capability interface the reconciliation engine requires
// from a remote object store.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucket string) (bool, error)
	// ObjectExists checks if an object (or a specific version of it) exists.
	ObjectExists(ctx context.Context, bucket, key, versionID string) (bool, error)
	// ObjectFingerprint returns the content digest of a remote object.
	// Objects produced by multipart upload carry a composite digest and yield
	// ErrFingerprintUnavailable.
	ObjectFingerprint(ctx context.Context, bucket, key, versionID string) (string, error)
	// UploadObject uploads a local file to the given key.
	UploadObject(ctx context.Context, bucket, key, localPath string, metadata map[string]string, encryptObject bool) error
	// DownloadObject downloads an object to a local destination path.
	DownloadObject(ctx context.Context, bucket, key, destPath, versionID string) error
	// DownloadObjectBytes downloads an object fully into memory.
	DownloadObjectBytes(ctx context.Context, bucket, key, versionID string) ([]byte, error)
	// CreateEmptyObject creates a zero-length object at the given key.
	CreateEmptyObject(ctx context.Context, bucket, key string) error
	// CreateBucket creates a new bucket in the given region.
	CreateBucket(ctx context.Context, bucket, region string) error
	// DeleteBucket removes an empty bucket. Callers must drain keys first.
	DeleteBucket(ctx context.Context, bucket string) error
	// DeleteObject removes a single object from a bucket.
	DeleteObject(ctx context.Context, bucket, key string) error
	// ListObjectKeys lists every object key in a bucket.
	ListObjectKeys(ctx context.Context, bucket string) ([]string, error)
	// PresignedGetURL generates a time-limited retrieval URL for an object.
	PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

type minioClientWrapper struct {
	client *minio.Client
}

func (c *minioClientWrapper) BucketExists(ctx context.Context, bucket string) (bool, error) {
	exists, err := c.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, classify("bucket_exists", bucket, "", err)
	}
	return exists, nil
}

func (c *minioClientWrapper) ObjectExists(ctx context.Context, bucket, key, versionID string) (bool, error) {
	opts := minio.StatObjectOptions{VersionID: versionID}
	_, err := c.client.StatObject(ctx, bucket, key, opts)
	if err == nil {
		return true, nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == 404 {
		return false, nil
	}
	// A nonexistent version id is reported as a 400, not a 404.
	if versionID != "" && resp.StatusCode == 400 {
		return false, nil
	}
	return false, classify("stat_object", bucket, key, err)
}

func (c *minioClientWrapper) ObjectFingerprint(ctx context.Context, bucket, key, versionID string) (string, error) {
	opts := minio.StatObjectOptions{VersionID: versionID}
	info, err := c.client.StatObject(ctx, bucket, key, opts)
	if err != nil {
		return "", classify("stat_object", bucket, key, err)
	}
	etag := strings.Trim(info.ETag, `"`)
	if strings.Contains(etag, "-") {
		return "", NewError("fingerprint", bucket, key, ErrFingerprintUnavailable)
	}
	return etag, nil
}

func (c *minioClientWrapper) UploadObject(ctx context.Context, bucket, key, localPath string, metadata map[string]string, encryptObject bool) error {
	opts := minio.PutObjectOptions{UserMetadata: metadata}
	if encryptObject {
		opts.ServerSideEncryption = encrypt.NewSSE()
	}
	if _, err := c.client.FPutObject(ctx, bucket, key, localPath, opts); err != nil {
		return classify("upload", bucket, key, err)
	}
	return nil
}

func (c *minioClientWrapper) DownloadObject(ctx context.Context, bucket, key, destPath, versionID string) error {
	opts := minio.GetObjectOptions{VersionID: versionID}
	if err := c.client.FGetObject(ctx, bucket, key, destPath, opts); err != nil {
		return classify("download", bucket, key, err)
	}
	return nil
}

func (c *minioClientWrapper) DownloadObjectBytes(ctx context.Context, bucket, key, versionID string) ([]byte, error) {
	opts := minio.GetObjectOptions{VersionID: versionID}
	obj, err := c.client.GetObject(ctx, bucket, key, opts)
	if err != nil {
		return nil, classify("download", bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classify("download", bucket, key, err)
	}
	return data, nil
}

func (c *minioClientWrapper) CreateEmptyObject(ctx context.Context, bucket, key string) error {
	_, err := c.client.PutObject(ctx, bucket, key, bytes.NewReader(nil), 0, minio.PutObjectOptions{})
	if err != nil {
		return classify("create_object", bucket, key, err)
	}
	return nil
}

func (c *minioClientWrapper) CreateBucket(ctx context.Context, bucket, region string) error {
	if err := c.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return classify("create_bucket", bucket, "", err)
	}
	return nil
}

func (c *minioClientWrapper) DeleteBucket(ctx context.Context, bucket string) error {
	if err := c.client.RemoveBucket(ctx, bucket); err != nil {
		return classify("delete_bucket", bucket, "", err)
	}
	return nil
}

func (c *minioClientWrapper) DeleteObject(ctx context.Context, bucket, key string) error {
	if err := c.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return classify("delete_object", bucket, key, err)
	}
	return nil
}

func (c *minioClientWrapper) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	var keys []string
	for info := range c.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, classify("list_objects", bucket, "", info.Err)
		}
		keys = append(keys, info.Key)
	}
	return keys, nil
}

func (c *minioClientWrapper) PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	u, err := c.client.PresignedGetObject(ctx, bucket, key, expiry, url.Values{})
	if err != nil {
		return "", classify("presign", bucket, key, err)
	}
	return u.String(), nil
}

// classify maps a raw client error onto the engine's error taxonomy.
// Store responses keep their identity (not-found, auth, generic store error);
// transport-level failures become retryable transient errors.
func classify(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		switch resp.Code {
		case "NoSuchBucket":
			return NewError(op, bucket, key, ErrBucketNotFound)
		case "NoSuchKey", "NoSuchVersion":
			return NewError(op, bucket, key, ErrKeyNotFound)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return NewError(op, bucket, key, ErrAuthentication)
		default:
			return NewError(op, bucket, key, wrap(ErrStore, err))
		}
	}

	if isNetworkError(err) {
		return NewError(op, bucket, key, wrap(ErrTransientTransport, err))
	}

	return NewError(op, bucket, key, wrap(ErrUnknownConnection, err))
}

// isNetworkError reports whether err is a transport-level failure
// (timeout, reset, broken connection) rather than a store response.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE)
}

type wrappedError struct {
	kind  error
	cause error
}

func (e *wrappedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *wrappedError) Is(target error) bool {
	return errors.Is(e.kind, target)
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// wrap tags cause with a sentinel kind while keeping the cause inspectable.
func wrap(kind, cause error) error {
	return &wrappedError{kind: kind, cause: cause}
}
