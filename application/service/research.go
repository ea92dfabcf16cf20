// Package service provides the application services: cache-first company
// research and bulk employee email search.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/firmscope/firmscope/domain/company"
	"github.com/firmscope/firmscope/domain/service"
	"github.com/firmscope/firmscope/domain/storage"
	"github.com/firmscope/firmscope/internal/database"
)

// Source tells callers where a lookup result came from.
type Source string

// Lookup result sources.
const (
	SourceCache Source = "cache"
	SourceAI    Source = "ai"
)

// CompanyRecord is a company together with its stored employee batch.
type CompanyRecord struct {
	Company   company.Company
	Employees []company.Employee
	Source    Source
}

// Research provides cache-first company lookups backed by an AI enricher.
// The cache is authoritative: a hit never triggers an AI call, and a failed
// enrichment never touches stored data.
type Research struct {
	companies company.CompanyStore
	employees company.EmployeeStore
	enricher  service.Enricher
	log       *slog.Logger
}

// NewResearch creates a new Research service.
func NewResearch(
	companies company.CompanyStore,
	employees company.EmployeeStore,
	enricher service.Enricher,
	log *slog.Logger,
) *Research {
	return &Research{
		companies: companies,
		employees: employees,
		enricher:  enricher,
		log:       log,
	}
}

// Lookup returns the cached record for (name, context), enriching and caching
// it first when absent. Exactly one enrichment call happens on a miss; on a
// hit none. Enrichment failure leaves the store untouched and returns
// ErrEnrichmentFailed wrapping the cause.
func (s *Research) Lookup(ctx context.Context, name, companyContext string) (CompanyRecord, error) {
	if strings.TrimSpace(name) == "" {
		return CompanyRecord{}, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	cached, err := s.companies.FindOne(ctx, company.WithCacheKey(name, companyContext)...)
	switch {
	case err == nil:
		employees, err := s.employees.Find(ctx, company.WithCompanyID(cached.ID()))
		if err != nil {
			return CompanyRecord{}, fmt.Errorf("load employee batch: %w", err)
		}
		s.log.Debug("lookup served from cache", "company", name)
		return CompanyRecord{Company: cached, Employees: employees, Source: SourceCache}, nil
	case errors.Is(err, database.ErrNotFound):
		return s.enrichAndStore(ctx, company.NewCompany(name, companyContext))
	default:
		return CompanyRecord{}, fmt.Errorf("cache lookup: %w", err)
	}
}

// Refresh forces a re-enrichment of (name, context), overwriting the cached
// company fields and replacing its employee batch wholesale. When enrichment
// fails the previously cached record stays intact.
func (s *Research) Refresh(ctx context.Context, name, companyContext string) (CompanyRecord, error) {
	if strings.TrimSpace(name) == "" {
		return CompanyRecord{}, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	target := company.NewCompany(name, companyContext)
	cached, err := s.companies.FindOne(ctx, company.WithCacheKey(name, companyContext)...)
	if err == nil {
		// Keep the row identity so the refresh overwrites in place.
		target = cached
	} else if !errors.Is(err, database.ErrNotFound) {
		return CompanyRecord{}, fmt.Errorf("cache lookup: %w", err)
	}

	return s.enrichAndStore(ctx, target)
}

// enrichAndStore runs one enrichment for the target company and persists the
// outcome atomically. The target carries row identity when this is a refresh.
func (s *Research) enrichAndStore(ctx context.Context, target company.Company) (CompanyRecord, error) {
	profile, employeeProfiles, err := s.enricher.EnrichCompany(ctx, target.Name(), target.Context())
	if err != nil {
		s.log.Warn("enrichment failed", "company", target.Name(), "error", err)
		return CompanyRecord{}, fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
	}

	enriched := target.WithProfile(
		profile.Industry(),
		profile.HeadCount(),
		profile.Domain(),
		profile.ContactEmail(),
		time.Now().UTC(),
	)

	employees := make([]company.Employee, 0, len(employeeProfiles))
	for _, p := range employeeProfiles {
		employees = append(employees, company.NewEmployee(
			target.ID(),
			p.FullName(),
			p.Title(),
			p.Department(),
			p.Seniority(),
			p.Email(),
			p.ProfileURL(),
		))
	}

	saved, savedEmployees, err := s.companies.SaveWithEmployees(ctx, enriched, employees)
	if err != nil {
		return CompanyRecord{}, fmt.Errorf("persist enrichment: %w", err)
	}

	s.log.Info("company enriched and cached",
		"company", saved.Name(),
		"employees", len(savedEmployees),
	)
	return CompanyRecord{Company: saved, Employees: savedEmployees, Source: SourceAI}, nil
}

// ManualEntry carries user-supplied company fields for SaveManual.
type ManualEntry struct {
	Name         string
	Context      string
	Industry     string
	HeadCount    int
	Domain       string
	ContactEmail string
}

// SaveManual upserts a company from user-supplied fields without any AI
// call. An existing cache entry keeps its employee batch; only the profile
// fields are overwritten.
func (s *Research) SaveManual(ctx context.Context, entry ManualEntry) (company.Company, error) {
	if strings.TrimSpace(entry.Name) == "" {
		return company.Company{}, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	target := company.NewCompany(entry.Name, entry.Context)
	cached, err := s.companies.FindOne(ctx, company.WithCacheKey(entry.Name, entry.Context)...)
	if err == nil {
		target = cached
	} else if !errors.Is(err, database.ErrNotFound) {
		return company.Company{}, fmt.Errorf("cache lookup: %w", err)
	}

	updated := target.WithProfile(
		entry.Industry,
		entry.HeadCount,
		entry.Domain,
		entry.ContactEmail,
		target.RefreshedAt(),
	)

	saved, err := s.companies.Save(ctx, updated)
	if err != nil {
		return company.Company{}, fmt.Errorf("save manual entry: %w", err)
	}

	s.log.Info("company saved manually", "company", saved.Name())
	return saved, nil
}

// Forget deletes the cache entry for (name, context) and its employee batch.
// Returns database.ErrNotFound when nothing is cached under that key.
func (s *Research) Forget(ctx context.Context, name, companyContext string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: company name is required", ErrValidation)
	}

	key := company.WithCacheKey(name, companyContext)
	count, err := s.companies.Count(ctx, key...)
	if err != nil {
		return fmt.Errorf("cache lookup: %w", err)
	}
	if count == 0 {
		return database.ErrNotFound
	}

	if err := s.companies.DeleteBy(ctx, key...); err != nil {
		return fmt.Errorf("forget company: %w", err)
	}

	s.log.Info("company forgotten", "company", name)
	return nil
}

// Get returns a cached company by ID with its employee batch.
func (s *Research) Get(ctx context.Context, id int64) (CompanyRecord, error) {
	cached, err := s.companies.FindOne(ctx, storage.WithID(id))
	if err != nil {
		return CompanyRecord{}, err
	}

	employees, err := s.employees.Find(ctx, company.WithCompanyID(cached.ID()))
	if err != nil {
		return CompanyRecord{}, fmt.Errorf("load employee batch: %w", err)
	}
	return CompanyRecord{Company: cached, Employees: employees, Source: SourceCache}, nil
}

// List returns cached companies ordered by most recently updated.
func (s *Research) List(ctx context.Context, limit, offset int) ([]company.Company, error) {
	opts := []storage.Option{storage.WithOrderDesc("updated_at")}
	if limit > 0 {
		opts = append(opts, storage.WithPagination(limit, offset)...)
	}
	return s.companies.Find(ctx, opts...)
}

// Count returns the total number of cached companies.
func (s *Research) Count(ctx context.Context) (int64, error) {
	return s.companies.Count(ctx)
}
