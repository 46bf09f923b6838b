// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the capability surface the
// reconciliation engine needs: existence checks, content fingerprints,
// transfers in both directions, bucket lifecycle, and presigned URLs.
// The abstraction supports AWS S3 as well as endpoint-compatible stores
// (self-hosted MinIO, fakes3-style test servers).
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks). NewClient selects the endpoint flavor: standard AWS
// uses virtual-host bucket addressing, custom endpoints are path-style.
//
// # Error Taxonomy
//
// Every error returned by a Client is classified against the package's
// sentinel errors. The distinction that matters to callers is transient
// transport failures (retryable, see IsTransient) versus store responses
// such as not-found, access-denied, or generic backend errors (fatal).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "artifacts")
package storage
