package shapes

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculation endpoints. The paths are mounted at
// the router root; they are the compatibility contract with the frontend.
func RegisterRoutes(r chi.Router) {
	r.Post("/circle", Circle)
	r.Post("/rectangle", Rectangle)
	r.Post("/triangle", Triangle)
}
