// Package migrations embeds the SQL schema migrations so the server can
// apply them at startup without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var Embed embed.FS
