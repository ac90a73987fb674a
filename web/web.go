// Package web holds the embedded storefront assets served by the checkout
// page handler.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
