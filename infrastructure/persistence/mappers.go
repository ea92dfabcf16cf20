package persistence

import (
	"time"

	"github.com/firmscope/firmscope/domain/company"
)

// CompanyMapper maps between domain Company and persistence CompanyModel.
type CompanyMapper struct{}

// ToDomain converts a CompanyModel to a domain Company.
func (m CompanyMapper) ToDomain(e CompanyModel) company.Company {
	var refreshedAt time.Time
	if e.RefreshedAt != nil {
		refreshedAt = *e.RefreshedAt
	}

	return company.ReconstructCompany(
		e.ID,
		e.Name,
		e.Context,
		strDeref(e.Industry),
		intDeref(e.HeadCount),
		strDeref(e.Domain),
		strDeref(e.ContactEmail),
		refreshedAt,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Company to a CompanyModel.
func (m CompanyMapper) ToModel(c company.Company) CompanyModel {
	var refreshedAt *time.Time
	if !c.RefreshedAt().IsZero() {
		t := c.RefreshedAt()
		refreshedAt = &t
	}

	return CompanyModel{
		ID:                c.ID(),
		Name:              c.Name(),
		NameNormalized:    c.NormalizedName(),
		Context:           c.Context(),
		ContextNormalized: c.NormalizedContext(),
		Industry:          strRef(c.Industry()),
		HeadCount:         intRef(c.HeadCount()),
		Domain:            strRef(c.Domain()),
		ContactEmail:      strRef(c.ContactEmail()),
		RefreshedAt:       refreshedAt,
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}

// EmployeeMapper maps between domain Employee and persistence EmployeeModel.
type EmployeeMapper struct{}

// ToDomain converts an EmployeeModel to a domain Employee.
func (m EmployeeMapper) ToDomain(e EmployeeModel) company.Employee {
	return company.ReconstructEmployee(
		e.ID,
		e.CompanyID,
		e.FullName,
		strDeref(e.Title),
		strDeref(e.Department),
		strDeref(e.Seniority),
		strDeref(e.Email),
		strDeref(e.ProfileURL),
		e.CreatedAt,
	)
}

// ToModel converts a domain Employee to an EmployeeModel.
func (m EmployeeMapper) ToModel(e company.Employee) EmployeeModel {
	return EmployeeModel{
		ID:         e.ID(),
		CompanyID:  e.CompanyID(),
		FullName:   e.FullName(),
		Title:      strRef(e.Title()),
		Department: strRef(e.Department()),
		Seniority:  strRef(e.Seniority()),
		Email:      strRef(e.Email()),
		ProfileURL: strRef(e.ProfileURL()),
		CreatedAt:  e.CreatedAt(),
	}
}

// strRef returns a pointer to s, or nil when s is empty. Unknown fields are
// stored as NULL rather than empty strings.
func strRef(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// intRef returns a pointer to n, or nil when n is not positive.
func intRef(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

func intDeref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
