// Package assets bundles the read-only data the bot ships with.
package assets

import (
	"embed"
)

//go:embed data/cows.json
var FS embed.FS

// CowsJSON returns the built-in cow catalog.
func CowsJSON() ([]byte, error) {
	return FS.ReadFile("data/cows.json")
}
