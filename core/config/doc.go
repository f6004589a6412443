// Package config loads the panel configuration.
//
// Values come from the environment, optionally overlaid by a .env file.
// Every key has a default declared in a `default` struct tag; the env name
// is the upper-cased key path joined by underscores:
//
//	SERVER_PORT=8080
//	SERVER_DEBUG=true
//	MANAGER_BINARY=/usr/local/bin/msm
//	JARS_SOURCE=s3
//	DATABASE_NAME=data/panel.db
//	ADMIN_BOOTSTRAP_USER=admin
//
// Usage:
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
