// Package assets embeds the page templates and stylesheet of the web front-end.
package assets

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static
var Static embed.FS
