package jars

const (
	SourceFilesystem = "filesystem"
	SourceS3         = "s3"
)

// Config selects where the jar catalog is read from.
type Config struct {
	// Source is either "filesystem" (the manager's jar storage path) or "s3".
	Source string `mapstructure:"source" default:"filesystem"`
	// Prefix is the object key prefix holding jars when Source is "s3".
	Prefix string `mapstructure:"prefix" default:""`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFilesystem, SourceS3:
		return true
	default:
		return false
	}
}
