// Package database opens the panel's credential database and scopes its use
// to a request.
//
// # Connect
//
// Connect wraps GORM for the two supported drivers: sqlite (default, a single
// local file created on first run) and mysql. Pool settings follow the driver;
// sqlite is limited to one connection.
//
// # Request scope
//
// Scoped is fiber middleware that opens a transaction before the handler runs
// and commits or rolls it back when the handler returns. Handlers fetch it with
// FromCtx.
//
// # Schema inspection
//
// GetTableColumns and MissingColumns read the live table definition so callers
// can verify the credential table after migration.
//
//	db, err := database.Connect(cfg.Database)
//	app.Get("/admins/", gate.Protect(), database.Scoped(db), handler)
package database
