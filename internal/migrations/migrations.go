// Package migrations embeds the goose SQL migrations that define the
// application schema.
package migrations

import "embed"

// FS holds the embedded migration files, applied at startup.
//
//go:embed *.sql
var FS embed.FS
