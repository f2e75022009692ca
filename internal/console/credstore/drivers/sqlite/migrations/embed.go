// Package migrations embeds the credential store schema so the binary can
// migrate its own database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
