package jars

import (
	"context"
	"fmt"
	"strings"

	"mc-panel/core/storage"

	"github.com/minio/minio-go/v7"
)

// S3Source lists jar objects below a key prefix of a bucket.
type S3Source struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// List returns jar keys relative to Prefix, in listing order.
func (s S3Source) List(ctx context.Context) ([]string, error) {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.Bucket)
	}

	prefix := strings.Trim(s.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var out []string
	for obj := range s.Client.ListObjects(ctx, s.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list jars: %w", obj.Err)
		}
		key := strings.TrimPrefix(obj.Key, prefix)
		if key == "" || strings.HasSuffix(key, "/") || !strings.HasSuffix(key, jarSuffix) {
			continue
		}
		out = append(out, key)
	}
	return out, nil
}
