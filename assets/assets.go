// Package assets embeds the built web UI. Run cmd/minify to regenerate
// index.html and favicon.min.svg from the sources in this directory.
package assets

import _ "embed"

//go:embed index.html
var Index []byte

//go:embed favicon.min.svg
var Favicon []byte
