package company

import (
	"strings"
	"time"
)

// Employee is a single discovered employee record. Employees belong to exactly
// one company and are only ever written as a batch tied to an enrichment
// event; re-enrichment supersedes the whole batch.
type Employee struct {
	id         int64
	companyID  int64
	fullName   string
	title      string
	department string
	seniority  string
	email      string
	profileURL string
	createdAt  time.Time
}

// NewEmployee creates an employee record for persistence under the given company.
func NewEmployee(companyID int64, fullName, title, department, seniority, email, profileURL string) Employee {
	return Employee{
		companyID:  companyID,
		fullName:   strings.TrimSpace(fullName),
		title:      strings.TrimSpace(title),
		department: strings.TrimSpace(department),
		seniority:  strings.TrimSpace(seniority),
		email:      strings.TrimSpace(email),
		profileURL: strings.TrimSpace(profileURL),
		createdAt:  time.Now(),
	}
}

// ReconstructEmployee recreates an employee from persistence (for store use).
func ReconstructEmployee(
	id int64,
	companyID int64,
	fullName string,
	title string,
	department string,
	seniority string,
	email string,
	profileURL string,
	createdAt time.Time,
) Employee {
	return Employee{
		id:         id,
		companyID:  companyID,
		fullName:   fullName,
		title:      title,
		department: department,
		seniority:  seniority,
		email:      email,
		profileURL: profileURL,
		createdAt:  createdAt,
	}
}

// ID returns the employee's database identifier (0 when not yet persisted).
func (e Employee) ID() int64 { return e.id }

// CompanyID returns the owning company's identifier.
func (e Employee) CompanyID() int64 { return e.companyID }

// FullName returns the employee's full name.
func (e Employee) FullName() string { return e.fullName }

// Title returns the job title, or "" when unknown.
func (e Employee) Title() string { return e.title }

// Department returns the department, or "" when unknown.
func (e Employee) Department() string { return e.department }

// Seniority returns the seniority level, or "" when unknown.
func (e Employee) Seniority() string { return e.seniority }

// Email returns the work email, or "" when unknown.
func (e Employee) Email() string { return e.email }

// ProfileURL returns a public profile URL, or "" when unknown.
func (e Employee) ProfileURL() string { return e.profileURL }

// CreatedAt returns the record creation time.
func (e Employee) CreatedAt() time.Time { return e.createdAt }

// DedupeKey identifies an employee for defensive deduplication: the
// normalized (full name, email) pair.
func (e Employee) DedupeKey() string {
	return Normalize(e.fullName) + "\x00" + strings.ToLower(strings.TrimSpace(e.email))
}

// DedupeEmployees removes duplicate employees by DedupeKey, keeping the first
// occurrence. Order is preserved.
func DedupeEmployees(employees []Employee) []Employee {
	seen := make(map[string]bool, len(employees))
	result := make([]Employee, 0, len(employees))
	for _, e := range employees {
		key := e.DedupeKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, e)
	}
	return result
}
