package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes guarded by the JWT middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.currentUser)
		r.Put("/api/user/profile", h.updateProfile)

		r.Post("/api/campaigns", h.createCampaign)
		r.Get("/api/campaigns", h.listCampaigns)
		r.Post("/api/campaigns/join", h.joinCampaign)

		r.Route("/api/campaigns/{campaignID}", func(r chi.Router) {
			r.Get("/", h.getCampaign)
			r.Patch("/", h.updateCampaign)
			r.Delete("/", h.deleteCampaign)

			r.Get("/members", h.listMembers)
			r.Get("/members/count", h.countMembers)
			r.Delete("/members/{memberID}", h.removeMember)

			r.Route("/items/{kind}", func(r chi.Router) {
				r.Get("/", h.listItems)
				r.Post("/", h.saveItem)
				r.Delete("/{itemID}", h.deleteItem)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
