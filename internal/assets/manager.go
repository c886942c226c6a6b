package assets

import (
	"embed"
	"log"
)

//go:embed config/*.toml
var projectAssets embed.FS

// DefaultConfig returns the embedded default configuration document
func DefaultConfig() []byte {
	data, err := projectAssets.ReadFile("config/bossfight.toml")
	if err != nil {
		log.Fatalf("Failed to read embedded config: %v", err)
	}
	return data
}
