package statics

import (
	"embed"
	"io/fs"
	"net/http"
)

// Serve static files
//
//go:embed www/*
var www embed.FS

// ServeStatics serves the embedded proof page, or staticsDir when set.
func ServeStatics(staticsDir string) http.HandlerFunc {
	if staticsDir == "" {
		sub, err := fs.Sub(www, "www")
		if err != nil {
			panic(err) // the embedded tree always has www
		}
		return http.FileServer(http.FS(sub)).ServeHTTP
	}
	return http.FileServer(http.Dir(staticsDir)).ServeHTTP
}
