// Package migrations embeds the panel catalog schema.
package migrations

import "embed"

// FS holds the SQL migration files applied on store open.
//
//go:embed *.sql
var FS embed.FS
