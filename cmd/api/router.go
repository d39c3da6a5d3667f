package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/flow-nodes/internal/infra/http/handlers"
	"github.com/xavierca1/flow-nodes/internal/infra/http/middleware"
)

type routerDeps struct {
	Contacts    *handlers.ContactHandler
	MongoDB     *handlers.MongoDBHandler
	Validation  *handlers.ValidationHandler
	Executions  *handlers.ExecutionHandler
	Health      *handlers.HealthHandler
	RateLimiter *middleware.RateLimiter
	TrustProxy  bool // só atrás de proxy que sobrescreve X-Forwarded-For
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Middleware)
		}
		r.Use(chimw.Timeout(60 * time.Second))

		r.Route("/agilecrm/contacts", func(r chi.Router) {
			r.Post("/update", d.Contacts.Update)
			r.Post("/update/async", d.Contacts.UpdateAsync)
		})
		r.Route("/mongodb", func(r chi.Router) {
			r.Post("/credentials/resolve", d.MongoDB.ResolveCredentials)
			r.Post("/credentials/test", d.MongoDB.TestConnection)
			r.Post("/items/project", d.MongoDB.ProjectItems)
		})
		r.Post("/json/validate", d.Validation.Handle)
		r.Get("/executions/{id}", d.Executions.Get)
	})

	return r
}
