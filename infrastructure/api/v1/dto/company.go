// Package dto defines the JSON shapes of the v1 API.
package dto

import (
	"time"

	"github.com/firmscope/firmscope/application/service"
	"github.com/firmscope/firmscope/domain/company"
)

// CompanyData is the JSON shape of a cached company.
type CompanyData struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Context      string     `json:"context,omitempty"`
	Industry     string     `json:"industry,omitempty"`
	HeadCount    int        `json:"head_count,omitempty"`
	SizeBucket   string     `json:"size_bucket,omitempty"`
	Domain       string     `json:"domain,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	RefreshedAt  *time.Time `json:"refreshed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EmployeeData is the JSON shape of a stored employee.
type EmployeeData struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	Seniority  string `json:"seniority,omitempty"`
	Email      string `json:"email,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// CompanyRecordResponse is the response to lookup/refresh/get requests.
type CompanyRecordResponse struct {
	Source    string         `json:"source"`
	Company   CompanyData    `json:"company"`
	Employees []EmployeeData `json:"employees"`
}

// CompanyListResponse is the response to list requests.
type CompanyListResponse struct {
	Data  []CompanyData `json:"data"`
	Total int64         `json:"total"`
}

// LookupRequest is the body of lookup and refresh requests.
type LookupRequest struct {
	Name    string `json:"name"`
	Context string `json:"context,omitempty"`
}

// ManualEntryRequest is the body of manual upsert requests.
type ManualEntryRequest struct {
	Name         string `json:"name"`
	Context      string `json:"context,omitempty"`
	Industry     string `json:"industry,omitempty"`
	HeadCount    int    `json:"head_count,omitempty"`
	Domain       string `json:"domain,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// BulkSearchRequest is the body of bulk search requests.
type BulkSearchRequest struct {
	CompanyName   string   `json:"company_name"`
	RoleTemplates []string `json:"role_templates,omitempty"`
}

// BulkSearchResponse is the response to bulk search requests.
type BulkSearchResponse struct {
	CompanyName string         `json:"company_name"`
	Employees   []EmployeeData `json:"employees"`
	Queries     int            `json:"queries"`
	Failed      int            `json:"failed"`
}

// CompanyToDTO converts a domain company.
func CompanyToDTO(c company.Company) CompanyData {
	var refreshedAt *time.Time
	if !c.RefreshedAt().IsZero() {
		t := c.RefreshedAt()
		refreshedAt = &t
	}

	return CompanyData{
		ID:           c.ID(),
		Name:         c.Name(),
		Context:      c.Context(),
		Industry:     c.Industry(),
		HeadCount:    c.HeadCount(),
		SizeBucket:   string(c.SizeBucket()),
		Domain:       c.Domain(),
		ContactEmail: c.ContactEmail(),
		RefreshedAt:  refreshedAt,
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

// EmployeesToDTO converts a domain employee batch.
func EmployeesToDTO(employees []company.Employee) []EmployeeData {
	data := make([]EmployeeData, 0, len(employees))
	for _, e := range employees {
		data = append(data, EmployeeData{
			ID:         e.ID(),
			FullName:   e.FullName(),
			Title:      e.Title(),
			Department: e.Department(),
			Seniority:  e.Seniority(),
			Email:      e.Email(),
			ProfileURL: e.ProfileURL(),
		})
	}
	return data
}

// RecordToDTO converts a lookup result.
func RecordToDTO(record service.CompanyRecord) CompanyRecordResponse {
	return CompanyRecordResponse{
		Source:    string(record.Source),
		Company:   CompanyToDTO(record.Company),
		Employees: EmployeesToDTO(record.Employees),
	}
}
