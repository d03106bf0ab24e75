// Package gamedata provides the embedded piece display definitions and
// utilities for loading them.
package gamedata

import "embed"

// dataFS holds pieces.json and any other JSON shipped with the binary.
//
//go:embed *.json
var dataFS embed.FS
