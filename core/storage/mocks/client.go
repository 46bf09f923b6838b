package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

func (m *Client) ObjectExists(ctx context.Context, bucket, key, versionID string) (bool, error) {
	args := m.Called(ctx, bucket, key, versionID)
	return args.Bool(0), args.Error(1)
}

func (m *Client) ObjectFingerprint(ctx context.Context, bucket, key, versionID string) (string, error) {
	args := m.Called(ctx, bucket, key, versionID)
	return args.String(0), args.Error(1)
}

func (m *Client) UploadObject(ctx context.Context, bucket, key, localPath string, metadata map[string]string, encryptObject bool) error {
	args := m.Called(ctx, bucket, key, localPath, metadata, encryptObject)
	return args.Error(0)
}

func (m *Client) DownloadObject(ctx context.Context, bucket, key, destPath, versionID string) error {
	args := m.Called(ctx, bucket, key, destPath, versionID)
	return args.Error(0)
}

func (m *Client) DownloadObjectBytes(ctx context.Context, bucket, key, versionID string) ([]byte, error) {
	args := m.Called(ctx, bucket, key, versionID)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateEmptyObject(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *Client) CreateBucket(ctx context.Context, bucket, region string) error {
	args := m.Called(ctx, bucket, region)
	return args.Error(0)
}

func (m *Client) DeleteBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

func (m *Client) DeleteObject(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *Client) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	args := m.Called(ctx, bucket)
	if keys, ok := args.Get(0).([]string); ok {
		return keys, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PresignedGetURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expiry)
	return args.String(0), args.Error(1)
}
