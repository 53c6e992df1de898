package main

import "embed"

// gameFS holds the default configs, stages and textures
//
//go:embed configs assets
var gameFS embed.FS
