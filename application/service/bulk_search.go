package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firmscope/firmscope/domain/company"
	"github.com/firmscope/firmscope/domain/service"
)

// DefaultRoleTemplates is the role query set used when the caller supplies
// none.
var DefaultRoleTemplates = []string{
	"find emails for the CEO or founders",
	"find emails for the CTO or VP of Engineering",
	"find emails for sales leadership",
	"find emails for marketing leadership",
	"find emails for HR or recruiting contacts",
}

// BulkSearchResult aggregates employees found across all role queries.
type BulkSearchResult struct {
	CompanyName string
	Employees   []company.Employee
	Queries     int
	Failed      int
}

// BulkSearch runs one employee search per role template, sequentially, and
// merges the results. Results are ad-hoc and never persisted.
type BulkSearch struct {
	enricher service.Enricher
	log      *slog.Logger
}

// NewBulkSearch creates a new BulkSearch service.
func NewBulkSearch(enricher service.Enricher, log *slog.Logger) *BulkSearch {
	return &BulkSearch{enricher: enricher, log: log}
}

// Run executes every role template against the enricher. Per-template
// failures are logged and tolerated; the call fails only when all templates
// fail, or when the context is cancelled. The merged list is deduplicated by
// (normalized full name, email).
func (s *BulkSearch) Run(ctx context.Context, companyName string, roleTemplates []string) (BulkSearchResult, error) {
	if strings.TrimSpace(companyName) == "" {
		return BulkSearchResult{}, fmt.Errorf("%w: company name is required", ErrValidation)
	}

	templates := make([]string, 0, len(roleTemplates))
	for _, t := range roleTemplates {
		if strings.TrimSpace(t) != "" {
			templates = append(templates, strings.TrimSpace(t))
		}
	}
	if len(templates) == 0 {
		templates = DefaultRoleTemplates
	}

	var (
		merged  []company.Employee
		failed  int
		lastErr error
	)

	for _, template := range templates {
		select {
		case <-ctx.Done():
			return BulkSearchResult{}, ctx.Err()
		default:
		}

		profiles, err := s.enricher.SearchEmployees(ctx, companyName, template)
		if err != nil {
			failed++
			lastErr = err
			s.log.Warn("role query failed",
				"company", companyName,
				"role", template,
				"error", err,
			)
			continue
		}

		for _, p := range profiles {
			merged = append(merged, company.NewEmployee(
				0,
				p.FullName(),
				p.Title(),
				p.Department(),
				p.Seniority(),
				p.Email(),
				p.ProfileURL(),
			))
		}
	}

	if failed == len(templates) {
		return BulkSearchResult{}, fmt.Errorf("%w: all %d role queries failed: %w", ErrEnrichmentFailed, failed, lastErr)
	}

	result := BulkSearchResult{
		CompanyName: companyName,
		Employees:   company.DedupeEmployees(merged),
		Queries:     len(templates),
		Failed:      failed,
	}

	s.log.Info("bulk search completed",
		"company", companyName,
		"queries", result.Queries,
		"failed", result.Failed,
		"employees", len(result.Employees),
	)
	return result, nil
}
