package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firmscope/firmscope"
	domainservice "github.com/firmscope/firmscope/domain/service"
	"github.com/firmscope/firmscope/infrastructure/api/v1/dto"
)

type stubEnricher struct {
	calls int
	fail  error
}

func (s *stubEnricher) EnrichCompany(_ context.Context, name, _ string) (domainservice.CompanyProfile, []domainservice.EmployeeProfile, error) {
	s.calls++
	if s.fail != nil {
		return domainservice.CompanyProfile{}, nil, s.fail
	}
	profile := domainservice.NewCompanyProfile(name, "Software", 100, "example.com", "")
	return profile, []domainservice.EmployeeProfile{
		domainservice.NewEmployeeProfile("Jane Roe", "CTO", "", "", "jane@example.com", ""),
	}, nil
}

func (s *stubEnricher) SearchEmployees(_ context.Context, _, _ string) ([]domainservice.EmployeeProfile, error) {
	s.calls++
	if s.fail != nil {
		return nil, s.fail
	}
	return []domainservice.EmployeeProfile{
		domainservice.NewEmployeeProfile("Sam Smith", "VP Sales", "", "", "sam@example.com", ""),
	}, nil
}

func newTestServer(t *testing.T, apiKeys []string) (*httptest.Server, *stubEnricher) {
	t.Helper()

	enr := &stubEnricher{}
	client, err := firmscope.New(
		firmscope.WithSQLite(filepath.Join(t.TempDir(), "test.db")),
		firmscope.WithEnricher(enr),
	)
	if err != nil {
		t.Fatalf("firmscope.New: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	srv := httptest.NewServer(NewAPIServer(client, apiKeys).Router())
	t.Cleanup(srv.Close)
	return srv, enr
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestAPI_LookupMissThenHit(t *testing.T) {
	srv, enr := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/research/lookup", `{"name":"Acme Corp"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var first dto.CompanyRecordResponse
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.Source != "ai" {
		t.Errorf("first source = %q, want ai", first.Source)
	}
	if len(first.Employees) != 1 {
		t.Errorf("employees = %d, want 1", len(first.Employees))
	}

	resp2 := postJSON(t, srv.URL+"/api/v1/research/lookup", `{"name":"acme   CORP"}`)
	defer func() { _ = resp2.Body.Close() }()

	var second dto.CompanyRecordResponse
	if err := json.NewDecoder(resp2.Body).Decode(&second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if second.Source != "cache" {
		t.Errorf("second source = %q, want cache", second.Source)
	}
	if enr.calls != 1 {
		t.Errorf("enricher calls = %d, want 1", enr.calls)
	}
}

func TestAPI_LookupValidation(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/research/lookup", `{"name":"  "}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAPI_EnrichmentFailureIsBadGateway(t *testing.T) {
	srv, enr := newTestServer(t, nil)
	enr.fail = fmt.Errorf("%w: timeout", domainservice.ErrServiceUnavailable)

	resp := postJSON(t, srv.URL+"/api/v1/research/lookup", `{"name":"Acme Corp"}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestAPI_BulkSearch(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/research/bulk-search", `{"company_name":"Acme Corp","role_templates":["sales"]}`)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result dto.BulkSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Queries != 1 || len(result.Employees) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAPI_CompaniesCRUD(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp := postJSON(t, srv.URL+"/api/v1/companies", `{"name":"Manual Co","industry":"Retail","head_count":12}`)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}

	var created dto.CompanyData
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	listResp, err := http.Get(srv.URL + "/api/v1/companies")
	if err != nil {
		t.Fatalf("GET companies: %v", err)
	}
	defer func() { _ = listResp.Body.Close() }()

	var list dto.CompanyListResponse
	if err := json.NewDecoder(listResp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("total = %d, want 1", list.Total)
	}

	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/v1/companies/%d", srv.URL, created.ID), nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	defer func() { _ = delResp.Body.Close() }()
	if delResp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", delResp.StatusCode)
	}

	getResp, err := http.Get(fmt.Sprintf("%s/api/v1/companies/%d", srv.URL, created.ID))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer func() { _ = getResp.Body.Close() }()
	if getResp.StatusCode != http.StatusNotFound {
		t.Errorf("get status after delete = %d, want 404", getResp.StatusCode)
	}
}

func TestAPI_APIKeyAuth(t *testing.T) {
	srv, _ := newTestServer(t, []string{"secret"})

	resp := postJSON(t, srv.URL+"/api/v1/research/lookup", `{"name":"Acme"}`)
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status without key = %d, want 401", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/research/lookup", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "secret")
	authed, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("authed request: %v", err)
	}
	defer func() { _ = authed.Body.Close() }()
	if authed.StatusCode != http.StatusOK {
		t.Errorf("status with key = %d, want 200", authed.StatusCode)
	}
}
