package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firmscope/firmscope/domain/company"
	"github.com/firmscope/firmscope/infrastructure/persistence"
	"github.com/firmscope/firmscope/internal/database"
	"github.com/firmscope/firmscope/internal/testdb"
)

func TestCompanyStore_SaveAndFindByCacheKey(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	c := company.NewCompany("Acme Corp", "manufacturer in Ohio").
		WithProfile("Manufacturing", 250, "acme.example", "hello@acme.example", time.Now().UTC())

	saved, err := store.Save(ctx, c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID() == 0 {
		t.Fatal("expected non-zero ID after save")
	}

	// The cache key matches regardless of spacing and case.
	found, err := store.FindOne(ctx, company.WithCacheKey("  ACME   corp ", "Manufacturer in OHIO")...)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if found.ID() != saved.ID() {
		t.Errorf("found ID = %d, want %d", found.ID(), saved.ID())
	}
	if found.Industry() != "Manufacturing" || found.HeadCount() != 250 {
		t.Errorf("profile not round-tripped: %+v", found)
	}
	if found.SizeBucket() != company.SizeLarge {
		t.Errorf("SizeBucket() = %q, want %q", found.SizeBucket(), company.SizeLarge)
	}
}

func TestCompanyStore_ContextSeparatesEntries(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	if _, err := store.Save(ctx, company.NewCompany("Mercury", "fintech")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Save(ctx, company.NewCompany("Mercury", "insurance")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	count, err := store.Count(ctx, company.WithNormalizedName("Mercury"))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}

	found, err := store.FindOne(ctx, company.WithCacheKey("Mercury", "insurance")...)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if found.Context() != "insurance" {
		t.Errorf("Context() = %q, want insurance", found.Context())
	}
}

func TestCompanyStore_CacheKeyIsUnique(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	if _, err := store.Save(ctx, company.NewCompany("Acme Corp", "")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Same cache key in a different surface form must be rejected by the
	// unique index.
	if _, err := store.Save(ctx, company.NewCompany("  acme   CORP ", "")); err == nil {
		t.Fatal("expected unique constraint error for duplicate cache key")
	}
}

func TestCompanyStore_SaveWithEmployees(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	c := company.NewCompany("Acme Corp", "")
	employees := []company.Employee{
		company.NewEmployee(0, "Jane Roe", "CTO", "Engineering", "executive", "jane@acme.example", ""),
		company.NewEmployee(0, "Sam Smith", "VP Sales", "Sales", "vp", "sam@acme.example", ""),
	}

	savedCompany, savedEmployees, err := store.SaveWithEmployees(ctx, c, employees)
	if err != nil {
		t.Fatalf("SaveWithEmployees: %v", err)
	}
	if savedCompany.ID() == 0 {
		t.Fatal("expected non-zero company ID")
	}
	if len(savedEmployees) != 2 {
		t.Fatalf("len(savedEmployees) = %d, want 2", len(savedEmployees))
	}
	for _, e := range savedEmployees {
		if e.CompanyID() != savedCompany.ID() {
			t.Errorf("employee CompanyID = %d, want %d", e.CompanyID(), savedCompany.ID())
		}
		if e.ID() == 0 {
			t.Error("expected non-zero employee ID")
		}
	}
}

func TestCompanyStore_SaveWithEmployeesReplacesBatch(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)
	employeeStore := persistence.NewEmployeeStore(db)

	c := company.NewCompany("Acme Corp", "")
	first := []company.Employee{
		company.NewEmployee(0, "Jane Roe", "CTO", "", "", "jane@acme.example", ""),
		company.NewEmployee(0, "Sam Smith", "VP Sales", "", "", "", ""),
	}

	savedCompany, _, err := store.SaveWithEmployees(ctx, c, first)
	if err != nil {
		t.Fatalf("SaveWithEmployees: %v", err)
	}

	second := []company.Employee{
		company.NewEmployee(0, "Alex Chen", "CEO", "", "", "", ""),
	}
	if _, _, err := store.SaveWithEmployees(ctx, savedCompany, second); err != nil {
		t.Fatalf("SaveWithEmployees (second): %v", err)
	}

	remaining, err := employeeStore.Find(ctx, company.WithCompanyID(savedCompany.ID()))
	if err != nil {
		t.Fatalf("Find employees: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("len(remaining) = %d, want 1", len(remaining))
	}
	if remaining[0].FullName() != "Alex Chen" {
		t.Errorf("remaining employee = %q, want Alex Chen", remaining[0].FullName())
	}
}

func TestCompanyStore_SaveWithEmployeesDedupes(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	employees := []company.Employee{
		company.NewEmployee(0, "Jane Roe", "CTO", "", "", "jane@acme.example", ""),
		company.NewEmployee(0, "JANE ROE", "Chief Technology Officer", "", "", "jane@acme.example", ""),
	}

	_, saved, err := store.SaveWithEmployees(ctx, company.NewCompany("Acme Corp", ""), employees)
	if err != nil {
		t.Fatalf("SaveWithEmployees: %v", err)
	}
	if len(saved) != 1 {
		t.Errorf("len(saved) = %d, want 1 after dedupe", len(saved))
	}
}

func TestCompanyStore_DeleteByRemovesEmployees(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)
	employeeStore := persistence.NewEmployeeStore(db)

	saved, _, err := store.SaveWithEmployees(ctx, company.NewCompany("Acme Corp", ""), []company.Employee{
		company.NewEmployee(0, "Jane Roe", "CTO", "", "", "", ""),
	})
	if err != nil {
		t.Fatalf("SaveWithEmployees: %v", err)
	}

	if err := store.DeleteBy(ctx, company.WithCacheKey("Acme Corp", "")...); err != nil {
		t.Fatalf("DeleteBy: %v", err)
	}

	if _, err := store.FindOne(ctx, company.WithCacheKey("Acme Corp", "")...); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("FindOne after delete = %v, want ErrNotFound", err)
	}

	count, err := employeeStore.Count(ctx, company.WithCompanyID(saved.ID()))
	if err != nil {
		t.Fatalf("Count employees: %v", err)
	}
	if count != 0 {
		t.Errorf("employee count after delete = %d, want 0", count)
	}
}

func TestCompanyStore_DeleteByMissingKeyIsNoOp(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	if err := store.DeleteBy(ctx, company.WithCacheKey("Nobody", "")...); err != nil {
		t.Errorf("DeleteBy on empty store: %v", err)
	}
}

func TestCompanyStore_NullableFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	store := persistence.NewCompanyStore(db)

	// No profile fields set: everything stays NULL and reads back empty.
	saved, err := store.Save(ctx, company.NewCompany("Bare Co", ""))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	found, err := store.FindOne(ctx, company.WithCacheKey("Bare Co", "")...)
	if err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if found.Industry() != "" || found.Domain() != "" || found.ContactEmail() != "" {
		t.Errorf("expected empty profile fields: %+v", found)
	}
	if found.HeadCount() != 0 {
		t.Errorf("HeadCount() = %d, want 0", found.HeadCount())
	}
	if !found.RefreshedAt().IsZero() {
		t.Errorf("RefreshedAt() = %v, want zero", found.RefreshedAt())
	}
	if found.ID() != saved.ID() {
		t.Errorf("ID mismatch: %d vs %d", found.ID(), saved.ID())
	}
}
