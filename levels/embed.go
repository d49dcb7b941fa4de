// Package levels embeds the bundled TMX maps.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS
