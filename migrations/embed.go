// Package migrations holds the goose SQL migrations of the token queue schema.
package migrations

import "embed"

// FS embeds all SQL migration files into the binary.
//
//go:embed *.sql
var FS embed.FS
