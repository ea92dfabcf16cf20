package company

import (
	"testing"
	"time"

	"github.com/firmscope/firmscope/domain/storage"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acme Corp", "acme corp"},
		{"  Acme   Corp  ", "acme corp"},
		{"ACME\tCORP", "acme corp"},
		{"acme\ncorp", "acme corp"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBucketForHeadCount(t *testing.T) {
	tests := []struct {
		count int
		want  SizeBucket
	}{
		{-1, ""},
		{0, ""},
		{1, SizeMicro},
		{9, SizeMicro},
		{10, SizeSmall},
		{49, SizeSmall},
		{50, SizeMedium},
		{249, SizeMedium},
		{250, SizeLarge},
		{999, SizeLarge},
		{1000, SizeEnterprise},
		{250000, SizeEnterprise},
	}

	for _, tt := range tests {
		if got := BucketForHeadCount(tt.count); got != tt.want {
			t.Errorf("BucketForHeadCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestNewCompany_TrimsInput(t *testing.T) {
	c := NewCompany("  Acme Corp  ", "  fintech in London  ")

	if c.Name() != "Acme Corp" {
		t.Errorf("Name() = %q, want %q", c.Name(), "Acme Corp")
	}
	if c.Context() != "fintech in London" {
		t.Errorf("Context() = %q, want %q", c.Context(), "fintech in London")
	}
	if c.NormalizedName() != "acme corp" {
		t.Errorf("NormalizedName() = %q, want %q", c.NormalizedName(), "acme corp")
	}
	if c.ID() != 0 {
		t.Errorf("ID() = %d, want 0 for unpersisted company", c.ID())
	}
}

func TestCompany_WithProfile(t *testing.T) {
	refreshedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c := NewCompany("Acme Corp", "").
		WithProfile("Software", 120, "acme.example", "hello@acme.example", refreshedAt)

	if c.Industry() != "Software" {
		t.Errorf("Industry() = %q, want Software", c.Industry())
	}
	if c.HeadCount() != 120 {
		t.Errorf("HeadCount() = %d, want 120", c.HeadCount())
	}
	if c.SizeBucket() != SizeMedium {
		t.Errorf("SizeBucket() = %q, want %q", c.SizeBucket(), SizeMedium)
	}
	if !c.RefreshedAt().Equal(refreshedAt) {
		t.Errorf("RefreshedAt() = %v, want %v", c.RefreshedAt(), refreshedAt)
	}
}

func TestCompany_WithProfileClearsOldValues(t *testing.T) {
	refreshedAt := time.Now()

	c := NewCompany("Acme Corp", "").
		WithProfile("Software", 120, "acme.example", "hello@acme.example", refreshedAt).
		WithProfile("", 0, "", "", refreshedAt)

	if c.Industry() != "" || c.Domain() != "" || c.ContactEmail() != "" {
		t.Errorf("profile fields not cleared: industry=%q domain=%q contact=%q",
			c.Industry(), c.Domain(), c.ContactEmail())
	}
	if c.SizeBucket() != "" {
		t.Errorf("SizeBucket() = %q, want empty for unknown head count", c.SizeBucket())
	}
}

func TestDedupeEmployees(t *testing.T) {
	employees := []Employee{
		NewEmployee(1, "Jane Roe", "CTO", "", "", "jane@acme.example", ""),
		NewEmployee(1, "JANE  ROE", "Chief Technology Officer", "", "", "JANE@ACME.EXAMPLE", ""),
		NewEmployee(1, "Jane Roe", "", "", "", "jane.roe@acme.example", ""),
		NewEmployee(1, "Sam Smith", "VP Sales", "", "", "", ""),
		NewEmployee(1, "sam smith", "", "", "", "", ""),
	}

	deduped := DedupeEmployees(employees)
	if len(deduped) != 3 {
		t.Fatalf("len(deduped) = %d, want 3", len(deduped))
	}

	// First occurrence wins.
	if deduped[0].Title() != "CTO" {
		t.Errorf("deduped[0].Title() = %q, want CTO", deduped[0].Title())
	}
	// Same name with a different email is a distinct person.
	if deduped[1].Email() != "jane.roe@acme.example" {
		t.Errorf("deduped[1].Email() = %q, want jane.roe@acme.example", deduped[1].Email())
	}
}

func TestDedupeEmployees_Empty(t *testing.T) {
	if got := DedupeEmployees(nil); len(got) != 0 {
		t.Errorf("DedupeEmployees(nil) = %v, want empty", got)
	}
}

func TestWithCacheKey(t *testing.T) {
	q := storage.Build(WithCacheKey("  Acme   Corp ", "Fintech in LONDON")...)

	conditions := q.Conditions()
	if len(conditions) != 2 {
		t.Fatalf("len(conditions) = %d, want 2", len(conditions))
	}

	if conditions[0].Field() != "name_normalized" || conditions[0].Value() != "acme corp" {
		t.Errorf("conditions[0] = %v, want name_normalized = acme corp", conditions[0])
	}
	if conditions[1].Field() != "context_normalized" || conditions[1].Value() != "fintech in london" {
		t.Errorf("conditions[1] = %v, want context_normalized = fintech in london", conditions[1])
	}
}
