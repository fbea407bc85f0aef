// Package difficulty maps difficulty tiers to level tuning.
package difficulty

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
