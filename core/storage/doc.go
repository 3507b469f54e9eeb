// Package storage provides the S3/MinIO object storage client used by
// the archive feature to persist version-history exports.
//
// The Client interface wraps the minio SDK so features can be tested
// against the mock in core/storage/mocks without a live object store.
package storage
