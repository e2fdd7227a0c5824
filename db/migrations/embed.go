// Package dbmigrations exposes embedded SQL migrations for tuikigai binaries.
package dbmigrations

import "embed"

// Files contains the embedded SQL migrations bundled into tuikigai binaries.
//
//go:embed *.sql
var Files embed.FS
