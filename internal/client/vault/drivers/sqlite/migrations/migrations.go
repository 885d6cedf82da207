// Package migrations embeds the vault schema migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
