package reconcile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"s3state/core/fingerprint"
	"s3state/core/storage"
	"s3state/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func mustDigest(t *testing.T, path string) string {
	t.Helper()
	sum, err := fingerprint.FileDigest(path)
	require.NoError(t, err)
	return sum
}

func transientErr() error {
	return storage.NewError("download", "b", "k", storage.ErrTransientTransport)
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketMissingFailsFast", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)

		_, err := New(client, nil).Run(ctx, Request{Mode: ModeGet, Bucket: "b", Key: "k", Dest: "/tmp/x"})
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
		client.AssertNumberOfCalls(t, "ObjectExists", 0)
	})

	t.Run("KeyMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(false, nil)

		_, err := New(client, nil).Run(ctx, Request{Mode: ModeGet, Bucket: "b", Key: "k", Dest: "/tmp/x"})
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("KeyMissingVersionQualified", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "v123").Return(false, nil)

		_, err := New(client, nil).Run(ctx, Request{Mode: ModeGet, Bucket: "b", Key: "k", VersionID: "v123", Dest: "/tmp/x"})
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		assert.Contains(t, err.Error(), "version id v123")
	})

	t.Run("DestAbsentDownloadsWithoutComparison", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "missing.txt")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(nil)

		out, err := New(client, nil).Run(ctx, Request{Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertNumberOfCalls(t, "DownloadObject", 1)
		client.AssertNumberOfCalls(t, "ObjectFingerprint", 0)
	})

	t.Run("MatchWithAlwaysStillDownloads", func(t *testing.T) {
		dest := writeTempFile(t, "same content")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return(mustDigest(t, dest), nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Overwrite: OverwriteAlways,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertNumberOfCalls(t, "DownloadObject", 1)
	})

	t.Run("MatchWithDifferentIsNoOp", func(t *testing.T) {
		dest := writeTempFile(t, "same content")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return(mustDigest(t, dest), nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Overwrite: OverwriteIfDifferent,
		})
		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Contains(t, out.Message, "identical")
		client.AssertNumberOfCalls(t, "DownloadObject", 0)
	})

	t.Run("MismatchWithNeverLeavesDestUntouched", func(t *testing.T) {
		dest := writeTempFile(t, "local content")
		before, err := os.ReadFile(dest)
		require.NoError(t, err)

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return("ffffffffffffffffffffffffffffffff", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Overwrite: OverwriteNever,
		})
		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Contains(t, out.Message, "force download")
		client.AssertNumberOfCalls(t, "DownloadObject", 0)

		after, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("MismatchWithDifferentDownloads", func(t *testing.T) {
		dest := writeTempFile(t, "local content")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return("ffffffffffffffffffffffffffffffff", nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Overwrite: OverwriteIfDifferent,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
	})

	t.Run("FingerprintUnavailableIsFatal", func(t *testing.T) {
		dest := writeTempFile(t, "local content")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").
			Return("", storage.NewError("fingerprint", "b", "k", storage.ErrFingerprintUnavailable))

		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Overwrite: OverwriteAlways,
		})
		assert.ErrorIs(t, err, storage.ErrFingerprintUnavailable)
		client.AssertNumberOfCalls(t, "DownloadObject", 0)
	})

	t.Run("TransientFailuresWithinBudgetSucceed", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "missing.txt")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(transientErr()).Twice()
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(nil).Once()

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Retries: 2,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertNumberOfCalls(t, "DownloadObject", 3)
	})

	t.Run("TransientFailuresExhaustBudget", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "missing.txt")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").Return(transientErr())

		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Retries: 2,
		})
		assert.True(t, storage.IsTransient(err))
		client.AssertNumberOfCalls(t, "DownloadObject", 3)
	})

	t.Run("StoreErrorNotRetried", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "missing.txt")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("DownloadObject", mock.Anything, "b", "k", dest, "").
			Return(storage.NewError("download", "b", "k", storage.ErrAuthentication))

		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModeGet, Bucket: "b", Key: "k", Dest: dest, Retries: 5,
		})
		assert.ErrorIs(t, err, storage.ErrAuthentication)
		client.AssertNumberOfCalls(t, "DownloadObject", 1)
	})
}

func TestGetString(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsContents", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("DownloadObjectBytes", mock.Anything, "b", "k", "").Return([]byte("payload"), nil)

		out, err := New(client, nil).Run(ctx, Request{Mode: ModeGetString, Bucket: "b", Key: "k"})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, "payload", out.Contents)
		client.AssertNumberOfCalls(t, "ObjectFingerprint", 0)
	})

	t.Run("KeyMissingVersionQualified", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "v9").Return(false, nil)

		_, err := New(client, nil).Run(ctx, Request{Mode: ModeGetString, Bucket: "b", Key: "k", VersionID: "v9"})
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
		assert.Contains(t, err.Error(), "v9")
	})
}

func TestPut(t *testing.T) {
	ctx := context.Background()

	t.Run("SourceMissing", func(t *testing.T) {
		client := new(mocks.Client)
		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k",
			Source: filepath.Join(t.TempDir(), "nope"),
		})
		assert.ErrorIs(t, err, storage.ErrLocalSourceNotFound)
		client.AssertNumberOfCalls(t, "BucketExists", 0)
	})

	t.Run("SourceIsDirectory", func(t *testing.T) {
		client := new(mocks.Client)
		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: t.TempDir(),
		})
		assert.ErrorIs(t, err, storage.ErrInvalidSource)
		client.AssertNumberOfCalls(t, "BucketExists", 0)
	})

	t.Run("BucketAbsentCreatesThenUploads", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		var order []string

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(false, nil)
		client.On("CreateBucket", mock.Anything, "b", "eu-west-1").Return(nil).
			Run(func(mock.Arguments) { order = append(order, "create") })
		client.On("UploadObject", mock.Anything, "b", "k", srcPath, map[string]string(nil), false).Return(nil).
			Run(func(mock.Arguments) { order = append(order, "upload") })
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath,
			Overwrite: OverwriteAlways, Region: "eu-west-1",
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, []string{"create", "upload"}, order)
		assert.Equal(t, "https://signed.example/k", out.URL)
	})

	t.Run("KeyAbsentUploadsWithoutComparison", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(false, nil)
		client.On("UploadObject", mock.Anything, "b", "k", srcPath, map[string]string(nil), false).Return(nil)
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertNumberOfCalls(t, "ObjectFingerprint", 0)
		client.AssertNumberOfCalls(t, "CreateBucket", 0)
	})

	t.Run("MatchWithNeverReturnsURLUnchanged", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return(mustDigest(t, srcPath), nil)
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath, Overwrite: OverwriteNever,
		})
		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Equal(t, "https://signed.example/k", out.URL)
		client.AssertNumberOfCalls(t, "UploadObject", 0)
	})

	t.Run("MatchWithAlwaysReUploads", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return(mustDigest(t, srcPath), nil)
		client.On("UploadObject", mock.Anything, "b", "k", srcPath, map[string]string(nil), false).Return(nil)
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath, Overwrite: OverwriteAlways,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertNumberOfCalls(t, "UploadObject", 1)
	})

	t.Run("MismatchWithNeverBlocked", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return("ffffffffffffffffffffffffffffffff", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath, Overwrite: OverwriteNever,
		})
		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Contains(t, out.Message, "force upload")
		client.AssertNumberOfCalls(t, "UploadObject", 0)
	})

	t.Run("MismatchWithDifferentUploads", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").Return("ffffffffffffffffffffffffffffffff", nil)
		client.On("UploadObject", mock.Anything, "b", "k", srcPath, map[string]string(nil), false).Return(nil)
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath, Overwrite: OverwriteIfDifferent,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
	})

	t.Run("FingerprintUnavailableIsFatal", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(true, nil)
		client.On("ObjectFingerprint", mock.Anything, "b", "k", "").
			Return("", storage.NewError("fingerprint", "b", "k", storage.ErrFingerprintUnavailable))

		_, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath, Overwrite: OverwriteAlways,
		})
		assert.ErrorIs(t, err, storage.ErrFingerprintUnavailable)
		client.AssertNumberOfCalls(t, "UploadObject", 0)
	})

	t.Run("MetadataAndEncryptionPassedThrough", func(t *testing.T) {
		srcPath := writeTempFile(t, "upload me")
		meta := map[string]string{"Content-Encoding": "gzip"}

		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "b").Return(true, nil)
		client.On("ObjectExists", mock.Anything, "b", "k", "").Return(false, nil)
		client.On("UploadObject", mock.Anything, "b", "k", srcPath, meta, true).Return(nil)
		client.On("PresignedGetURL", mock.Anything, "b", "k", mock.Anything).Return("https://signed.example/k", nil)

		out, err := New(client, nil).Run(ctx, Request{
			Mode: ModePut, Bucket: "b", Key: "k", Source: srcPath,
			Metadata: meta, Encrypt: true,
		})
		require.NoError(t, err)
		assert.True(t, out.Changed)
		client.AssertExpectations(t)
	})
}
