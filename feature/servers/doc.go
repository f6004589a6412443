// Package servers exposes the manager CLI over HTTP.
//
// # Routes
//
//   - GET /                        redirect to the first server, or "No servers? :("
//   - GET /server/:name/           JSON detail: state, all servers, worlds, jars, tasks
//   - GET /server/:name/:action    submit start|stop|restart, redirect back, X-Task-ID
//   - GET /tasks/:id               JSON task status
//
// Every query re-runs the CLI; nothing is cached between requests.
package servers
