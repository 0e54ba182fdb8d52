// Package web embeds the static browser assets served by the demo endpoint.
package web

import "embed"

//go:embed demo.html
var FS embed.FS
