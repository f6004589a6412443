package jars

import (
	"fmt"

	"mc-panel/core/manager"
	"mc-panel/core/storage"
)

// Resolver picks the Source for a request from the catalog configuration.
type Resolver struct {
	cfg        Config
	jarPathKey string
	client     storage.Client
	bucket     string
	static     Source
}

// NewResolver creates a resolver. client may be nil unless cfg.Source is s3.
func NewResolver(cfg Config, jarPathKey string, client storage.Client, bucket string) *Resolver {
	return &Resolver{cfg: cfg, jarPathKey: jarPathKey, client: client, bucket: bucket}
}

// NewStaticResolver creates a resolver that always returns src.
func NewStaticResolver(src Source) *Resolver {
	return &Resolver{static: src}
}

// NeedsManagerConfig reports whether Source requires the manager's config.
func (r *Resolver) NeedsManagerConfig() bool {
	return r.static == nil && r.cfg.Source != SourceS3
}

// Source returns the jar source. For the filesystem source the root is read
// from the manager config map.
func (r *Resolver) Source(cfg manager.ConfigMap) (Source, error) {
	if r.static != nil {
		return r.static, nil
	}

	switch r.cfg.Source {
	case SourceS3:
		if r.client == nil {
			return nil, fmt.Errorf("s3 jar source requires a storage client")
		}
		return S3Source{Client: r.client, Bucket: r.bucket, Prefix: r.cfg.Prefix}, nil
	case SourceFilesystem, "":
		root, ok := cfg.JarStoragePath(r.jarPathKey)
		if !ok {
			return nil, fmt.Errorf("%w: key %s", ErrNoJarRoot, r.jarPathKey)
		}
		return FSSource{Root: root}, nil
	default:
		return nil, fmt.Errorf("unsupported jar source: %s", r.cfg.Source)
	}
}
