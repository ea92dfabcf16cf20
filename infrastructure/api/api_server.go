package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/firmscope/firmscope"
	"github.com/firmscope/firmscope/infrastructure/api/middleware"
	v1 "github.com/firmscope/firmscope/infrastructure/api/v1"
)

// requestTimeout bounds a single API request, including any AI enrichment it
// triggers.
const requestTimeout = 120 * time.Second

// APIServer wires the v1 routes onto a router backed by a firmscope client.
type APIServer struct {
	client  *firmscope.Client
	logger  *slog.Logger
	apiKeys []string
	router  chi.Router
}

// NewAPIServer creates a new APIServer.
func NewAPIServer(client *firmscope.Client, apiKeys []string) *APIServer {
	return &APIServer{
		client:  client,
		logger:  client.Logger(),
		apiKeys: apiKeys,
	}
}

// Router returns the router, building it on first use.
func (a *APIServer) Router() chi.Router {
	if a.router == nil {
		a.router = chi.NewRouter()
		a.mountRoutes(a.router)
	}
	return a.router
}

// MountOn wires the v1 API routes onto an existing server.
func (a *APIServer) MountOn(server Server) {
	a.mountRoutes(server.Router())
}

func (a *APIServer) mountRoutes(router chi.Router) {
	researchRouter := v1.NewResearchRouter(a.client)
	companiesRouter := v1.NewCompaniesRouter(a.client)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(requestTimeout))
		r.Use(middleware.Logging(a.logger))
		r.Use(middleware.APIKeyAuth(a.apiKeys))

		r.Mount("/research", researchRouter.Routes())
		r.Mount("/companies", companiesRouter.Routes())
	})
}
