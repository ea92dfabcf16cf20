package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/firmscope/firmscope"
	"github.com/firmscope/firmscope/application/service"
	"github.com/firmscope/firmscope/infrastructure/api/middleware"
	"github.com/firmscope/firmscope/infrastructure/api/v1/dto"
)

// ResearchRouter handles research API endpoints.
type ResearchRouter struct {
	client *firmscope.Client
	logger *slog.Logger
}

// NewResearchRouter creates a new ResearchRouter.
func NewResearchRouter(client *firmscope.Client) *ResearchRouter {
	return &ResearchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for research endpoints.
func (r *ResearchRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/lookup", r.Lookup)
	router.Post("/refresh", r.Refresh)
	router.Post("/bulk-search", r.BulkSearch)

	return router
}

// Lookup handles POST /api/v1/research/lookup. Cache hits answer without
// touching the AI service; misses enrich once and cache the result.
func (r *ResearchRouter) Lookup(w http.ResponseWriter, req *http.Request) {
	var body dto.LookupRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: %v", service.ErrValidation, err), r.logger)
		return
	}

	record, err := r.client.Research.Lookup(req.Context(), body.Name, body.Context)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.RecordToDTO(record))
}

// Refresh handles POST /api/v1/research/refresh. Forces a re-enrichment of
// the cache entry.
func (r *ResearchRouter) Refresh(w http.ResponseWriter, req *http.Request) {
	var body dto.LookupRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: %v", service.ErrValidation, err), r.logger)
		return
	}

	record, err := r.client.Research.Refresh(req.Context(), body.Name, body.Context)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.RecordToDTO(record))
}

// BulkSearch handles POST /api/v1/research/bulk-search.
func (r *ResearchRouter) BulkSearch(w http.ResponseWriter, req *http.Request) {
	var body dto.BulkSearchRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: %v", service.ErrValidation, err), r.logger)
		return
	}

	result, err := r.client.BulkSearch.Run(req.Context(), body.CompanyName, body.RoleTemplates)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.BulkSearchResponse{
		CompanyName: result.CompanyName,
		Employees:   dto.EmployeesToDTO(result.Employees),
		Queries:     result.Queries,
		Failed:      result.Failed,
	})
}

// CompaniesRouter handles cached-company API endpoints.
type CompaniesRouter struct {
	client *firmscope.Client
	logger *slog.Logger
}

// NewCompaniesRouter creates a new CompaniesRouter.
func NewCompaniesRouter(client *firmscope.Client) *CompaniesRouter {
	return &CompaniesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for company endpoints.
func (r *CompaniesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.SaveManual)
	router.Get("/{id}", r.Get)
	router.Delete("/{id}", r.Delete)

	return router
}

// List handles GET /api/v1/companies.
func (r *CompaniesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)

	companies, err := r.client.Research.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	total, err := r.client.Research.Count(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	data := make([]dto.CompanyData, 0, len(companies))
	for _, c := range companies {
		data = append(data, dto.CompanyToDTO(c))
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CompanyListResponse{Data: data, Total: total})
}

// Get handles GET /api/v1/companies/{id}.
func (r *CompaniesRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := parseID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	record, err := r.client.Research.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.RecordToDTO(record))
}

// SaveManual handles POST /api/v1/companies. Upserts user-supplied company
// fields without any AI call.
func (r *CompaniesRouter) SaveManual(w http.ResponseWriter, req *http.Request) {
	var body dto.ManualEntryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: %v", service.ErrValidation, err), r.logger)
		return
	}

	saved, err := r.client.Research.SaveManual(req.Context(), service.ManualEntry{
		Name:         body.Name,
		Context:      body.Context,
		Industry:     body.Industry,
		HeadCount:    body.HeadCount,
		Domain:       body.Domain,
		ContactEmail: body.ContactEmail,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.CompanyToDTO(saved))
}

// Delete handles DELETE /api/v1/companies/{id}. Removes the cache entry and
// its employee batch.
func (r *CompaniesRouter) Delete(w http.ResponseWriter, req *http.Request) {
	id, err := parseID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	record, err := r.client.Research.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	if err := r.client.Research.Forget(req.Context(), record.Company.Name(), record.Company.Context()); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(req *http.Request) (int64, error) {
	idStr := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrValidation, idStr)
	}
	return id, nil
}
