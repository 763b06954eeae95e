// Package web holds the embedded browser assets for the customer form.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS

//go:embed static/*.js
var Static embed.FS
