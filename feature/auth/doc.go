// Package auth serves /login/ and /logout.
//
// A successful login regenerates the session id and sends the visitor to the
// URL stashed by the session gate, at most once, or to the landing page.
// Failed logins go back to the form without a message.
package auth
