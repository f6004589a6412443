// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: generates a request id, stores it for the logger and echoes it
//     in the X-Ray-ID response header.
//   - Proxy: applies X-Script-Name, X-Scheme and X-Forwarded-Server from a
//     fronting reverse proxy and prefixes redirects with the script name.
//   - Auth: session backed login gate that protects routes and remembers the
//     page an anonymous visitor asked for.
//
// RayID and Proxy are registered globally before any route; Auth is attached
// per route group.
package middleware
