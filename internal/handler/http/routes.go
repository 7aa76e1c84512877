package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/token", h.token)
		r.Post("/auth/register", h.register)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/users", func(r chi.Router) {
			r.With(h.requires(admin)).Get("/", h.listUsers)
			r.With(h.requires(admin)).Post("/", h.createUser)

			r.Route("/{username}", func(r chi.Router) {
				r.Use(h.requires(adminOrSelf("username")))
				r.Get("/", h.getUser)
				r.Patch("/", h.updateUser)
				r.Delete("/", h.deleteUser)
				r.Get("/lists", h.listUserLists)
				r.Post("/lists", h.createList)
			})
		})

		r.Route("/lists", func(r chi.Router) {
			r.With(h.requires(admin)).Get("/", h.listLists)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getList)
				r.Patch("/", h.updateList)
				r.Delete("/", h.deleteList)
				r.Get("/items", h.listListItems)
				r.Post("/items", h.createItem)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.With(h.requires(admin)).Get("/", h.listItems)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getItem)
				r.Patch("/", h.updateItem)
				r.Delete("/", h.deleteItem)
			})
		})
	})

	return router
}
