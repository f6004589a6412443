// Package admins manages the panel's login credentials.
//
// Each admin is stored as a username, a random 16 byte salt and the hex
// SHA-256 digest of salt || password. Usernames are unique. The HTTP routes
// (/admins/..., /newadmin) require a session and run inside one database
// transaction per request.
package admins
