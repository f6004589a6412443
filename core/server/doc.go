// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// listen port, the debug switch that replaces the manager CLI with canned
// output, and the optional cookie encryption key.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to build the fiber application.
package server
