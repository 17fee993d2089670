// Package web carries the themes compiled into the binary.
package web

import "embed"

// Themes holds one directory per built-in theme.
//
//go:embed themes
var Themes embed.FS
