// Package jars builds the catalog of server jars offered in the panel.
//
// Three sources implement Source:
//   - FSSource walks the manager's jar storage directory (the path stored
//     under JAR_STORAGE_PATH in `msm config`) and keeps regular files ending
//     in ".jar".
//   - S3Source lists a bucket prefix through core/storage.
//   - StaticSource serves a fixed list (debug mode).
//
// Resolver chooses one from Config for each request; nothing is cached.
package jars
