package main

import "embed"

// configFS carries the default settings so the binary runs from any directory.
//
//go:embed configs
var configFS embed.FS
