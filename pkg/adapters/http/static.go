package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// static serves files under staticDir and falls back to the JSON 404 for anything else.
func (s *Server) static() http.Handler {
	files := http.FileServer(http.Dir(s.staticDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			s.notFound(w, r)
			return
		}

		name := filepath.Join(s.staticDir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		info, err := os.Stat(name)
		if err == nil && info.IsDir() {
			info, err = os.Stat(filepath.Join(name, "index.html"))
		}
		if err != nil || strings.HasPrefix(info.Name(), ".") {
			s.notFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
