// Package service defines domain service contracts for AI enrichment.
package service

import "context"

// CompanyProfile holds the company fields an enrichment produced. Fields the
// model could not determine are zero-valued, never fabricated.
type CompanyProfile struct {
	name      string
	industry  string
	headCount int
	domain    string
	contact   string
}

// NewCompanyProfile creates a company profile.
func NewCompanyProfile(name, industry string, headCount int, domain, contact string) CompanyProfile {
	return CompanyProfile{
		name:      name,
		industry:  industry,
		headCount: headCount,
		domain:    domain,
		contact:   contact,
	}
}

// Name returns the company name the model resolved.
func (p CompanyProfile) Name() string { return p.name }

// Industry returns the industry, or "" when unknown.
func (p CompanyProfile) Industry() string { return p.industry }

// HeadCount returns the employee head count, or 0 when unknown.
func (p CompanyProfile) HeadCount() int { return p.headCount }

// Domain returns the web domain, or "" when unknown.
func (p CompanyProfile) Domain() string { return p.domain }

// ContactEmail returns the general contact email, or "" when unknown.
func (p CompanyProfile) ContactEmail() string { return p.contact }

// EmployeeProfile holds the fields of a single discovered employee.
type EmployeeProfile struct {
	fullName   string
	title      string
	department string
	seniority  string
	email      string
	profileURL string
}

// NewEmployeeProfile creates an employee profile.
func NewEmployeeProfile(fullName, title, department, seniority, email, profileURL string) EmployeeProfile {
	return EmployeeProfile{
		fullName:   fullName,
		title:      title,
		department: department,
		seniority:  seniority,
		email:      email,
		profileURL: profileURL,
	}
}

// FullName returns the employee's full name.
func (p EmployeeProfile) FullName() string { return p.fullName }

// Title returns the job title, or "" when unknown.
func (p EmployeeProfile) Title() string { return p.title }

// Department returns the department, or "" when unknown.
func (p EmployeeProfile) Department() string { return p.department }

// Seniority returns the seniority level, or "" when unknown.
func (p EmployeeProfile) Seniority() string { return p.seniority }

// Email returns the work email, or "" when unknown.
func (p EmployeeProfile) Email() string { return p.email }

// ProfileURL returns a public profile URL, or "" when unknown.
func (p EmployeeProfile) ProfileURL() string { return p.profileURL }

// Enricher derives structured company and employee fields from an AI service
// with web-search grounding. Implementations make exactly one model call per
// method invocation and never retry.
type Enricher interface {
	// EnrichCompany researches a company by name, with optional free-text
	// context to disambiguate same-named companies. Fails with
	// ErrServiceUnavailable or ErrParse.
	EnrichCompany(ctx context.Context, name, context string) (CompanyProfile, []EmployeeProfile, error)

	// SearchEmployees runs a single role-focused employee query such as
	// "find emails for CTO at Acme Corp". Fails with ErrServiceUnavailable
	// or ErrParse.
	SearchEmployees(ctx context.Context, companyName, roleQuery string) ([]EmployeeProfile, error)
}
