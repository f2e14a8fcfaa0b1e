package wire

import (
	"net/http"

	"airport-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// crudHandler is the handler shape shared by every catalog resource.
type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type middlewareFunc = func(http.Handler) http.Handler

func wireCatalog(r chi.Router, handler *adaptor.Handler, auth, admin middlewareFunc) {
	resources := map[string]crudHandler{
		"/airplane-types": handler.AirplaneType,
		"/crew":           handler.Crew,
		"/airports":       handler.Airport,
		"/routes":         handler.Route,
		"/airplanes":      handler.Airplane,
		"/flights":        handler.Flight,
	}

	for path, h := range resources {
		r.Route(path, func(r chi.Router) {
			// reads are public
			r.Get("/", h.List)
			r.Get("/{id}", h.Get)

			r.Group(func(r chi.Router) {
				r.Use(auth, admin)
				r.Post("/", h.Create)
				r.Put("/{id}", h.Update)
				r.Delete("/{id}", h.Delete)
			})
		})
	}
}
