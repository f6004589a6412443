package jars

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

const jarSuffix = ".jar"

// ErrNoJarRoot is returned when the manager config names no jar directory.
var ErrNoJarRoot = errors.New("jar storage path is not configured")

// Source lists the jars available to servers.
type Source interface {
	List(ctx context.Context) ([]string, error)
}

// FSSource lists jar files below a local directory.
type FSSource struct {
	Root string
}

// List walks Root in lexical order and returns "dir/name.jar" paths relative
// to it, or "name.jar" for files directly in Root. A symlinked Root is
// resolved first.
func (s FSSource) List(ctx context.Context) ([]string, error) {
	root, err := filepath.EvalSymlinks(filepath.Clean(s.Root))
	if err != nil {
		return nil, err
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != root && !strings.HasPrefix(path, prefix) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(d.Name(), jarSuffix) {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		if rel == "." {
			out = append(out, d.Name())
		} else {
			out = append(out, filepath.ToSlash(rel)+"/"+d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StaticSource returns a fixed catalog.
type StaticSource []string

// List implements Source.
func (s StaticSource) List(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}
