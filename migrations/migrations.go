// Package migrations embeds the archive schema for every supported database.
package migrations

import "embed"

// FS holds one directory of ordered .sql files per database.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
