// Package site handles the embedded front-end page.
package site

import (
	"context"
	"net/http"
)

// Register attaches the embedded front-end routes to mux. The page at /
// drives the whole game through the JSON API.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.FileServer(FS())
	mux.Handle("/", files)
}
