package handlers

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const indexFile = "index.html"

// Static serves a single-page frontend from dir. Existing files are served as
// is; every other path gets dir/index.html so client-side routes resolve.
func Static(dir string) http.Handler {
	fsys := os.DirFS(dir)
	files := http.FileServer(http.FS(fsys))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "."
		}
		if info, err := fs.Stat(fsys, name); err == nil {
			if !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
			if _, err := fs.Stat(fsys, path.Join(name, indexFile)); err == nil {
				files.ServeHTTP(w, r)
				return
			}
		}

		if _, err := fs.Stat(fsys, indexFile); err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
			return
		}
		http.ServeFileFS(w, r, fsys, indexFile)
	})
}
