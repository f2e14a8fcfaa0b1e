package wire

import (
	"airport-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireOrders mounts the customer order routes. The user always comes from the session.
func wireOrders(r chi.Router, orderHandler *adaptor.OrderHandler, auth middlewareFunc) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", orderHandler.Create)
		r.Get("/", orderHandler.List)
		r.Get("/{id}", orderHandler.Get)
		r.Delete("/{id}", orderHandler.Delete)
		r.Post("/{id}/tickets", orderHandler.AddTicket)
	})
}
