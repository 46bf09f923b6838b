package storage_test

import (
	"testing"

	"s3state/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("DefaultAWSEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("CustomEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true, // scheme wins, TLS is disabled
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPSScheme", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://storage.example.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "eu-west-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEffectiveRegion(t *testing.T) {
	assert.Equal(t, "", storage.Config{}.EffectiveRegion())
	assert.Equal(t, "", storage.Config{Region: "us-east-1"}.EffectiveRegion())
	assert.Equal(t, "eu-west-1", storage.Config{Region: "eu-west-1"}.EffectiveRegion())
}
