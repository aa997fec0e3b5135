package config

import "embed"

//go:embed game_config.yaml
var embeddedFS embed.FS
