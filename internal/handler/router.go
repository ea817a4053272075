package handler

import (
	"net/http"

	"github.com/Shivanand-hulikatti/event-finder/internal/auth"
	"github.com/Shivanand-hulikatti/event-finder/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route of the API.
func NewRouter(svc *service.EventService, provider *auth.Provider, log logrus.FieldLogger) http.Handler {
	h := NewEventHandler(svc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(log))
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(Authenticate(provider))

	r.Get("/health", HealthCheck)

	r.Route("/districts", func(r chi.Router) {
		r.Get("/", ListProvinces)
		r.Get("/search", SearchDistricts)
		r.Get("/{id}/children", ListDistricts)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.SearchEvents)
		r.Get("/festivals/ongoing", h.OngoingFestivals)
		r.Get("/new", h.NewEvents)
		r.Get("/{uuid}", h.GetEvent)
		r.Get("/{uuid}/favorite", h.IsFavorite)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth)
			r.Post("/", h.CreateEvent)
			r.Delete("/{uuid}", h.DeleteEvent)
			r.Put("/{uuid}/favorite", h.AddFavorite)
			r.Delete("/{uuid}/favorite", h.RemoveFavorite)
		})
	})

	r.Route("/me", func(r chi.Router) {
		r.Use(RequireAuth)
		r.Post("/", h.Me)
		r.Get("/favorites", h.FavoriteEvents)
		r.Get("/history", h.ViewHistory)
	})

	return r
}
