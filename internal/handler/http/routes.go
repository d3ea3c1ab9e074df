package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version/", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withVaultSession, h.withIntegrityCheck)

		r.Get("/api/vault/credentials", h.listEntries)
		r.Post("/api/vault/credentials", h.addEntry)
		r.Get("/api/vault/credentials/{id}", h.revealEntry)
		r.Patch("/api/vault/credentials/{id}", h.updateEntry)
		r.Delete("/api/vault/credentials/{id}", h.deleteEntry)

		r.Get("/api/vault/setting", h.vaultStatus)
		r.Post("/api/vault/lock", h.lock)

		// routes that take the vault password
		r.Group(func(r chi.Router) {
			r.Use(h.limitVaultSecret)

			r.Post("/api/vault/setting", h.setVaultSecret)
			r.Patch("/api/vault/setting", h.setVaultSecret)
			r.Post("/api/vault/verify-pin", h.verifyPin)
			r.Post("/api/vault/unlock", h.unlock)
			r.Post("/api/vault/view", h.viewEntry)

			r.Post("/vault/set_password", h.setVaultSecret)
			r.Post("/vault/unlock-vault", h.unlock)
			r.Post("/vault/view", h.viewEntry)
		})

		// legacy paths
		r.Get("/vault/get-vault", h.listEntries)
		r.Post("/vault/add", h.addEntry)
		r.Post("/vault/update/{id}", h.updateEntry)
		r.Delete("/vault/delete/{id}", h.deleteEntry)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
