package storage

// DefaultEndpoint is the standard AWS S3 endpoint used when no override is set.
const DefaultEndpoint = "s3.amazonaws.com"

// DefaultRegion is the provider's standard location. Empty and us-east-1
// both map to it.
const DefaultRegion = "us-east-1"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. Leave empty for AWS S3;
	// set for endpoint-compatible stores (MinIO, fakes3, Walrus-style).
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is the location used when creating buckets (e.g., eu-west-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// EffectiveRegion resolves the configured region to the location passed to
// bucket creation. us-east-1 is the provider default and maps to empty.
func (c Config) EffectiveRegion() string {
	if c.Region == "" || c.Region == DefaultRegion {
		return ""
	}
	return c.Region
}
