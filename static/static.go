// Package static embeds the API documentation assets served under /static.
package static

import "embed"

// FS holds openapi.json and the page that renders it.
//
//go:embed openapi.json openapi.html
var FS embed.FS

// OpenAPIHTML is the documentation page served at /api/docs.
//
//go:embed openapi.html
var OpenAPIHTML []byte
