// Package fitgen embeds the built frontend for serving from the binary.
package fitgen

import "embed"

//go:embed web/dist
var WebFS embed.FS
