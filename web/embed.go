// Package web embeds the static dashboard page served at the root.
package web

import "embed"

//go:embed static/*
var StaticFS embed.FS
