// Package storage wraps the MinIO client used when server jars live in an S3
// compatible bucket instead of the manager's local jar directory.
//
// Client exposes only what the jar catalog needs (BucketExists, ListObjects)
// so tests can substitute core/storage/mocks.
package storage
