package storage

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewClient creates a Client for the configured endpoint flavor.
//
// The flavor decision lives here, not in the engine: standard AWS endpoints
// use virtual-host bucket addressing, while custom endpoints (MinIO, fakes3
// and other compatible stores) are addressed path-style. An explicit http://
// scheme on the endpoint disables TLS regardless of the use_ssl setting.
func NewClient(cfg Config) (Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	custom := endpoint != ""
	if !custom {
		endpoint = DefaultEndpoint
		useSSL = true
	}

	if strings.HasPrefix(endpoint, "http://") {
		useSSL = false
	}
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	lookup := minio.BucketLookupDNS
	if custom {
		lookup = minio.BucketLookupPath
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration, // Wait for first response byte timeout
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL,
		Region:       cfg.Region,
		Transport:    transport,
		BucketLookup: lookup,
	})
	if err != nil {
		return nil, NewError("connect", "", "", wrap(ErrUnknownConnection, err))
	}

	return &minioClientWrapper{client: minioClient}, nil
}
