// Package web embeds the site's static assets.
package web

import "embed"

// Static holds everything under static/, served at /static/.
//
//go:embed static
var Static embed.FS
