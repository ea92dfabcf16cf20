package enricher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/firmscope/firmscope/domain/service"
	"github.com/firmscope/firmscope/infrastructure/provider"
)

// fakeProvider returns canned content and records the requests it received.
type fakeProvider struct {
	content   string
	err       error
	webSearch bool
	requests  []provider.ChatCompletionRequest
}

func (f *fakeProvider) ChatCompletion(_ context.Context, req provider.ChatCompletionRequest) (provider.ChatCompletionResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return provider.ChatCompletionResponse{}, f.err
	}
	return provider.NewChatCompletionResponse(f.content, "stop", provider.NewUsage(0, 0, 0)), nil
}

func (f *fakeProvider) SupportsWebSearch() bool { return f.webSearch }

func (f *fakeProvider) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

const validCompanyJSON = `{
  "company": {
    "name": "Acme Corp",
    "industry": "Manufacturing",
    "employee_size": 250,
    "domain": "acme.example",
    "contact_email": "info@acme.example"
  },
  "employees": [
    {"full_name": "Jane Roe", "title": "CTO", "department": "Engineering", "seniority": "Executive", "email": "jane@acme.example", "profile_url": null},
    {"full_name": "  ", "title": "Ghost", "department": null, "seniority": null, "email": null, "profile_url": null},
    {"full_name": "John Doe", "title": null, "department": null, "seniority": null, "email": null, "profile_url": "https://example.com/johndoe"}
  ]
}`

func TestProviderEnricher_EnrichCompany(t *testing.T) {
	fake := &fakeProvider{content: validCompanyJSON, webSearch: true}
	e := NewProviderEnricher(fake, testLogger())

	profile, employees, err := e.EnrichCompany(context.Background(), "Acme Corp", "manufacturer in Ohio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Name() != "Acme Corp" {
		t.Errorf("unexpected name: %q", profile.Name())
	}
	if profile.Industry() != "Manufacturing" {
		t.Errorf("unexpected industry: %q", profile.Industry())
	}
	if profile.HeadCount() != 250 {
		t.Errorf("unexpected head count: %d", profile.HeadCount())
	}

	// Blank-named employee is dropped.
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].FullName() != "Jane Roe" {
		t.Errorf("unexpected first employee: %q", employees[0].FullName())
	}

	if len(fake.requests) != 1 {
		t.Fatalf("expected exactly 1 model call, got %d", len(fake.requests))
	}
	req := fake.requests[0]
	if !req.WebSearch() {
		t.Error("expected web search grounding to be requested")
	}
	if !strings.Contains(req.Messages()[1].Content(), "manufacturer in Ohio") {
		t.Errorf("context missing from query: %q", req.Messages()[1].Content())
	}
}

func TestProviderEnricher_EnrichCompanyNullFields(t *testing.T) {
	fake := &fakeProvider{content: `{"company":{"name":"Acme","industry":null,"employee_size":null,"domain":null,"contact_email":null},"employees":[]}`}
	e := NewProviderEnricher(fake, testLogger())

	profile, employees, err := e.EnrichCompany(context.Background(), "Acme", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Industry() != "" || profile.HeadCount() != 0 || profile.Domain() != "" {
		t.Errorf("null fields should be zero-valued: %+v", profile)
	}
	if len(employees) != 0 {
		t.Errorf("expected no employees, got %d", len(employees))
	}
}

func TestProviderEnricher_EnrichCompanyFencedJSON(t *testing.T) {
	fenced := "Here is the data:\n```json\n" + validCompanyJSON + "\n```\nHope that helps."
	fake := &fakeProvider{content: fenced}
	e := NewProviderEnricher(fake, testLogger())

	profile, _, err := e.EnrichCompany(context.Background(), "Acme Corp", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name() != "Acme Corp" {
		t.Errorf("unexpected name: %q", profile.Name())
	}
}

func TestProviderEnricher_EnrichCompanyParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"prose only", "I could not find anything about that company."},
		{"missing company", `{"employees":[]}`},
		{"missing name", `{"company":{"industry":"Tech"},"employees":[]}`},
		{"wrong type", `{"company":{"name":"Acme","employee_size":"two hundred"},"employees":[]}`},
		{"truncated", `{"company":{"name":"Acme"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeProvider{content: tc.content}
			e := NewProviderEnricher(fake, testLogger())

			_, _, err := e.EnrichCompany(context.Background(), "Acme", "")
			if !errors.Is(err, service.ErrParse) {
				t.Errorf("expected parse error, got %v", err)
			}
		})
	}
}

func TestProviderEnricher_EnrichCompanyUnavailable(t *testing.T) {
	fake := &fakeProvider{err: fmt.Errorf("%w: connection refused", service.ErrServiceUnavailable)}
	e := NewProviderEnricher(fake, testLogger())

	_, _, err := e.EnrichCompany(context.Background(), "Acme", "")
	if !errors.Is(err, service.ErrServiceUnavailable) {
		t.Errorf("expected service unavailable, got %v", err)
	}
}

func TestProviderEnricher_EmployeeLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"company":{"name":"Acme"},"employees":[`)
	for i := range 15 {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"full_name":"Employee %d"}`, i)
	}
	sb.WriteString(`]}`)

	fake := &fakeProvider{content: sb.String()}
	e := NewProviderEnricher(fake, testLogger()).WithEmployeeLimit(5)

	_, employees, err := e.EnrichCompany(context.Background(), "Acme", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 5 {
		t.Errorf("expected employee list capped at 5, got %d", len(employees))
	}
}

func TestProviderEnricher_SearchEmployees(t *testing.T) {
	fake := &fakeProvider{content: `{
	  "employees": [
	    {"full_name": "Sam Smith", "title": "VP Sales", "email": "sam@acme.example"},
	    {"full_name": "Ana Lopez", "title": "Sales Director", "email": null}
	  ]
	}`}
	e := NewProviderEnricher(fake, testLogger())

	employees, err := e.SearchEmployees(context.Background(), "Acme Corp", "find emails for sales leadership")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].Email() != "sam@acme.example" {
		t.Errorf("unexpected email: %q", employees[0].Email())
	}

	req := fake.requests[0]
	if !strings.Contains(req.Messages()[1].Content(), "sales leadership") {
		t.Errorf("role query missing: %q", req.Messages()[1].Content())
	}
}

func TestProviderEnricher_SearchEmployeesParseError(t *testing.T) {
	fake := &fakeProvider{content: "no json here"}
	e := NewProviderEnricher(fake, testLogger())

	_, err := e.SearchEmployees(context.Background(), "Acme", "CTO")
	if !errors.Is(err, service.ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}
