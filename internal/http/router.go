package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	categoryHandler "github.com/anaramires/tally/internal/http/category"
	"github.com/anaramires/tally/internal/http/dashboard"
	"github.com/anaramires/tally/internal/http/importcsv"
	"github.com/anaramires/tally/internal/http/transaction"
)

func New(
	dashboardV1 *dashboard.Handler,
	transactionsV1 *transaction.Handler,
	categoriesV1 *categoryHandler.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The web front-end is served from its own origin in development.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
	})

	return router
}
