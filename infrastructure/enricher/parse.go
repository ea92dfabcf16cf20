package enricher

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/firmscope/firmscope/domain/service"
)

// companyDoc is the wire schema the model must produce for a company
// enrichment. Pointer fields distinguish null/absent from empty.
type companyDoc struct {
	Company   *companyFields   `json:"company"`
	Employees []employeeFields `json:"employees"`
}

type companyFields struct {
	Name         *string `json:"name"`
	Industry     *string `json:"industry"`
	EmployeeSize *int    `json:"employee_size"`
	Domain       *string `json:"domain"`
	ContactEmail *string `json:"contact_email"`
}

// employeeDoc is the wire schema for a role-focused employee search.
type employeeDoc struct {
	Employees []employeeFields `json:"employees"`
}

type employeeFields struct {
	FullName   *string `json:"full_name"`
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Seniority  *string `json:"seniority"`
	Email      *string `json:"email"`
	ProfileURL *string `json:"profile_url"`
}

// extractJSON pulls the JSON object out of model output. Tries the whole text
// first, then falls back to the outermost brace pair, which tolerates prose
// or markdown fences around the object.
func extractJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty response", service.ErrParse)
	}

	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: no JSON object in response", service.ErrParse)
	}

	candidate := trimmed[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("%w: malformed JSON object", service.ErrParse)
	}
	return candidate, nil
}

// parseCompanyDoc validates model output against the company schema. A
// missing company object or empty company name fails the whole response;
// employees without a full name are dropped.
func parseCompanyDoc(text string) (service.CompanyProfile, []service.EmployeeProfile, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return service.CompanyProfile{}, nil, err
	}

	var doc companyDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return service.CompanyProfile{}, nil, fmt.Errorf("%w: %v", service.ErrParse, err)
	}

	if doc.Company == nil {
		return service.CompanyProfile{}, nil, fmt.Errorf("%w: missing company object", service.ErrParse)
	}

	name := strings.TrimSpace(strDeref(doc.Company.Name))
	if name == "" {
		return service.CompanyProfile{}, nil, fmt.Errorf("%w: missing company name", service.ErrParse)
	}

	profile := service.NewCompanyProfile(
		name,
		strings.TrimSpace(strDeref(doc.Company.Industry)),
		intDeref(doc.Company.EmployeeSize),
		strings.TrimSpace(strDeref(doc.Company.Domain)),
		strings.TrimSpace(strDeref(doc.Company.ContactEmail)),
	)

	return profile, parseEmployees(doc.Employees), nil
}

// parseEmployeeDoc validates model output against the employee search schema.
func parseEmployeeDoc(text string) ([]service.EmployeeProfile, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var doc employeeDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrParse, err)
	}

	return parseEmployees(doc.Employees), nil
}

func parseEmployees(fields []employeeFields) []service.EmployeeProfile {
	employees := make([]service.EmployeeProfile, 0, len(fields))
	for _, e := range fields {
		fullName := strings.TrimSpace(strDeref(e.FullName))
		if fullName == "" {
			continue
		}
		employees = append(employees, service.NewEmployeeProfile(
			fullName,
			strings.TrimSpace(strDeref(e.Title)),
			strings.TrimSpace(strDeref(e.Department)),
			strings.TrimSpace(strDeref(e.Seniority)),
			strings.TrimSpace(strDeref(e.Email)),
			strings.TrimSpace(strDeref(e.ProfileURL)),
		))
	}
	return employees
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
