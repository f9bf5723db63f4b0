package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tarkov_market/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/ammo", handler(s.getV1Ammo))
			r.Get("/items", handler(s.getV1Items))
			r.Get("/items/category", handler(s.getV1ItemsCategory))
			r.Get("/barters", handler(s.getV1Barters))
			r.Get("/task-items", handler(s.getV1TaskItems))
			r.Get("/tasks", handler(s.getV1Tasks))
			r.Get("/crafts", handler(s.getV1Crafts))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
