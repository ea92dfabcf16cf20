package enricher

import "fmt"

// companyPromptFormat instructs the model to research a company and answer
// with a single JSON object. The schema is enforced on our side; anything
// that does not unmarshal into it is rejected as a parse failure.
const companyPromptFormat = `You are a factual assistant. Using web search grounding, return EXACTLY a JSON object:
{
  "company": {
    "name": "string",
    "industry": "string|null",
    "employee_size": "integer|null",
    "domain": "string|null",
    "contact_email": "string|null"
  },
  "employees": [
    {"full_name":"string","title":"string|null","department":"string|null","seniority":"string|null","email":"string|null","profile_url":"string|null"}
  ]
}
Keep employees <=%d. Only publicly listed information. Use null for any field you cannot verify. Respond with JSON only, no prose and no markdown fences.`

// roleSearchPromptFormat instructs the model to find employees matching a
// role-focused query and answer with a single JSON object.
const roleSearchPromptFormat = `You are a factual assistant. Using web search grounding, find publicly listed employees of the given company that match the role query. Return EXACTLY a JSON object:
{
  "employees": [
    {"full_name":"string","title":"string|null","department":"string|null","seniority":"string|null","email":"string|null","profile_url":"string|null"}
  ]
}
Keep employees <=%d. Only publicly listed information. Use null for any field you cannot verify. Respond with JSON only, no prose and no markdown fences.`

func companyPrompt(limit int) string {
	return fmt.Sprintf(companyPromptFormat, limit)
}

func roleSearchPrompt(limit int) string {
	return fmt.Sprintf(roleSearchPromptFormat, limit)
}

// companyQuery renders the user message for a company enrichment. The
// disambiguating context rides along so same-named companies resolve to the
// one the caller means.
func companyQuery(name, context string) string {
	if context == "" {
		return fmt.Sprintf("Query: %q", name)
	}
	return fmt.Sprintf("Query: %q\nContext: %q", name, context)
}

// roleQuery renders the user message for a role-focused employee search.
func roleQuery(companyName, role string) string {
	return fmt.Sprintf("Company: %q\nRole query: %q", companyName, role)
}
