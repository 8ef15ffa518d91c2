package web

import (
	"embed"
	"net/http"
)

//go:embed views
var views embed.FS

// Index serves the upload form.
func Index(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "views/index.html")
}

// ListFiles serves the listing page.
func ListFiles(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "views/list-files.html")
}

func servePage(w http.ResponseWriter, r *http.Request, name string) {
	page, err := views.ReadFile(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page)
}
