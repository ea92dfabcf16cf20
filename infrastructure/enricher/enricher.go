// Package enricher provides AI-powered company research. It turns a company
// name into a structured profile plus an employee roster by asking a search
// grounded model for a strictly shaped JSON document.
package enricher

import (
	"context"
	"log/slog"

	"github.com/firmscope/firmscope/domain/service"
	"github.com/firmscope/firmscope/infrastructure/provider"
)

const (
	defaultEmployeeLimit = 10
	defaultMaxTokens     = 4096
	defaultTemperature   = 0.2
)

// ProviderEnricher implements service.Enricher on top of a provider.Provider.
// Each method makes exactly one model call; transient retry lives inside the
// provider transport, not here.
type ProviderEnricher struct {
	generator     provider.Provider
	employeeLimit int
	maxTokens     int
	temperature   float64
	log           *slog.Logger
}

// NewProviderEnricher creates a new ProviderEnricher.
func NewProviderEnricher(generator provider.Provider, log *slog.Logger) *ProviderEnricher {
	return &ProviderEnricher{
		generator:     generator,
		employeeLimit: defaultEmployeeLimit,
		maxTokens:     defaultMaxTokens,
		temperature:   defaultTemperature,
		log:           log,
	}
}

// WithEmployeeLimit caps how many employees a single enrichment may return.
func (e *ProviderEnricher) WithEmployeeLimit(n int) *ProviderEnricher {
	if n > 0 {
		e.employeeLimit = n
	}
	return e
}

// WithMaxTokens sets the maximum tokens for generation.
func (e *ProviderEnricher) WithMaxTokens(n int) *ProviderEnricher {
	e.maxTokens = n
	return e
}

// EnrichCompany researches a company and returns its profile and employees.
func (e *ProviderEnricher) EnrichCompany(ctx context.Context, name, companyContext string) (service.CompanyProfile, []service.EmployeeProfile, error) {
	content, err := e.complete(ctx, companyPrompt(e.employeeLimit), companyQuery(name, companyContext))
	if err != nil {
		return service.CompanyProfile{}, nil, err
	}

	profile, employees, err := parseCompanyDoc(content)
	if err != nil {
		e.log.Warn("company enrichment response rejected", "company", name, "error", err)
		return service.CompanyProfile{}, nil, err
	}

	if len(employees) > e.employeeLimit {
		employees = employees[:e.employeeLimit]
	}

	e.log.Debug("company enriched",
		"company", name,
		"employees", len(employees),
	)
	return profile, employees, nil
}

// SearchEmployees runs a single role-focused employee query.
func (e *ProviderEnricher) SearchEmployees(ctx context.Context, companyName, role string) ([]service.EmployeeProfile, error) {
	content, err := e.complete(ctx, roleSearchPrompt(e.employeeLimit), roleQuery(companyName, role))
	if err != nil {
		return nil, err
	}

	employees, err := parseEmployeeDoc(content)
	if err != nil {
		e.log.Warn("employee search response rejected", "company", companyName, "role", role, "error", err)
		return nil, err
	}

	if len(employees) > e.employeeLimit {
		employees = employees[:e.employeeLimit]
	}
	return employees, nil
}

func (e *ProviderEnricher) complete(ctx context.Context, system, user string) (string, error) {
	req := provider.NewChatCompletionRequest([]provider.Message{
		provider.SystemMessage(system),
		provider.UserMessage(user),
	}).
		WithMaxTokens(e.maxTokens).
		WithTemperature(e.temperature)

	if e.generator.SupportsWebSearch() {
		req = req.WithWebSearch()
	}

	resp, err := e.generator.ChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Content(), nil
}

var _ service.Enricher = (*ProviderEnricher)(nil)
