// Package web holds static assets embedded into the binary.
package web

import _ "embed"

// Index is the landing page served at the root path.
//
//go:embed index.html
var Index []byte
