// Package storage provides S3-compatible object storage access via MinIO.
//
// The service uses object storage for exactly one thing: the generated
// summary.png artifact. The Client interface covers the handful of operations
// that pipeline needs (upload, download, stat, remove, bucket management) so
// tests can substitute the mock implementation in storage/mocks.
package storage
