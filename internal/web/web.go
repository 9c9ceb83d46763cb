// Package web serves the embedded HTML/CSS/JS frontend for the shapes
// calculator. The pages call the calculation endpoints over fetch; the
// backend stays a plain JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed assets
var assets embed.FS

// RegisterRoutes mounts the frontend pages and static assets.
func RegisterRoutes(r chi.Router) {
	staticFS, err := fs.Sub(assets, "assets/static")
	if err != nil {
		panic(err)
	}

	r.Get("/", servePage("index.html"))
	r.Get("/circle-page", servePage("circle.html"))
	r.Get("/rectangle-page", servePage("rectangle.html"))
	r.Get("/triangle-page", servePage("triangle.html"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))
}

func servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := assets.ReadFile("assets/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(data)
	}
}
