// Package levels embeds the built-in level catalogue.
package levels

import "embed"

//go:embed easy medium hard
var Assets embed.FS
