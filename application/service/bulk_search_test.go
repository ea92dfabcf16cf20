package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domainservice "github.com/firmscope/firmscope/domain/service"
)

// scriptedEnricher answers each SearchEmployees call from a queue of
// scripted results.
type scriptedEnricher struct {
	results [][]domainservice.EmployeeProfile
	errs    []error
	calls   int
	roles   []string
}

func (s *scriptedEnricher) EnrichCompany(context.Context, string, string) (domainservice.CompanyProfile, []domainservice.EmployeeProfile, error) {
	return domainservice.CompanyProfile{}, nil, errors.New("not used")
}

func (s *scriptedEnricher) SearchEmployees(_ context.Context, _, role string) ([]domainservice.EmployeeProfile, error) {
	i := s.calls
	s.calls++
	s.roles = append(s.roles, role)
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.results) {
		return s.results[i], nil
	}
	return nil, nil
}

func TestBulkSearch_DedupesAcrossQueries(t *testing.T) {
	enricher := &scriptedEnricher{
		results: [][]domainservice.EmployeeProfile{
			{
				domainservice.NewEmployeeProfile("Jane Roe", "CTO", "", "", "jane@acme.example", ""),
				domainservice.NewEmployeeProfile("Sam Smith", "VP Sales", "", "", "sam@acme.example", ""),
			},
			{
				// Same person found by a second query, different casing.
				domainservice.NewEmployeeProfile("JANE  ROE", "Chief Technology Officer", "", "", "JANE@ACME.EXAMPLE", ""),
				domainservice.NewEmployeeProfile("Ana Lopez", "Recruiter", "", "", "", ""),
			},
		},
	}

	svc := NewBulkSearch(enricher, testLogger())
	result, err := svc.Run(context.Background(), "Acme Corp", []string{"tech leadership", "recruiting"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Employees) != 3 {
		t.Errorf("employees = %d, want 3 after dedupe", len(result.Employees))
	}
	if result.Queries != 2 || result.Failed != 0 {
		t.Errorf("unexpected counters: %+v", result)
	}
}

func TestBulkSearch_ToleratesPartialFailures(t *testing.T) {
	enricher := &scriptedEnricher{
		errs: []error{fmt.Errorf("%w: timeout", domainservice.ErrServiceUnavailable), nil},
		results: [][]domainservice.EmployeeProfile{
			nil,
			{domainservice.NewEmployeeProfile("Sam Smith", "VP Sales", "", "", "sam@acme.example", "")},
		},
	}

	svc := NewBulkSearch(enricher, testLogger())
	result, err := svc.Run(context.Background(), "Acme Corp", []string{"a", "b"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}
	if len(result.Employees) != 1 {
		t.Errorf("employees = %d, want 1", len(result.Employees))
	}
}

func TestBulkSearch_AllFailuresFail(t *testing.T) {
	unavailable := fmt.Errorf("%w: down", domainservice.ErrServiceUnavailable)
	enricher := &scriptedEnricher{errs: []error{unavailable, unavailable}}

	svc := NewBulkSearch(enricher, testLogger())
	_, err := svc.Run(context.Background(), "Acme Corp", []string{"a", "b"})
	if !errors.Is(err, ErrEnrichmentFailed) {
		t.Fatalf("expected ErrEnrichmentFailed, got %v", err)
	}
	if !errors.Is(err, domainservice.ErrServiceUnavailable) {
		t.Errorf("cause not preserved: %v", err)
	}
}

func TestBulkSearch_DefaultTemplates(t *testing.T) {
	enricher := &scriptedEnricher{}
	svc := NewBulkSearch(enricher, testLogger())

	result, err := svc.Run(context.Background(), "Acme Corp", nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Queries != len(DefaultRoleTemplates) {
		t.Errorf("queries = %d, want %d", result.Queries, len(DefaultRoleTemplates))
	}
	if enricher.calls != len(DefaultRoleTemplates) {
		t.Errorf("enricher calls = %d, want %d", enricher.calls, len(DefaultRoleTemplates))
	}
}

func TestBulkSearch_Validation(t *testing.T) {
	svc := NewBulkSearch(&scriptedEnricher{}, testLogger())

	_, err := svc.Run(context.Background(), "  ", nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
