package company

import (
	"context"

	"github.com/firmscope/firmscope/domain/storage"
)

// CompanyStore persists company cache entries.
type CompanyStore interface {
	// Find retrieves companies matching the given options.
	Find(ctx context.Context, options ...storage.Option) ([]Company, error)

	// FindOne retrieves a single company, or database.ErrNotFound.
	FindOne(ctx context.Context, options ...storage.Option) (Company, error)

	// Count returns the number of matching companies.
	Count(ctx context.Context, options ...storage.Option) (int64, error)

	// Save creates or updates a company.
	Save(ctx context.Context, c Company) (Company, error)

	// SaveWithEmployees persists a company together with its full employee
	// batch in a single transaction, replacing any previously stored batch.
	// Nothing is written if any part fails.
	SaveWithEmployees(ctx context.Context, c Company, employees []Employee) (Company, []Employee, error)

	// DeleteBy removes companies matching the given options together with
	// their employee batches.
	DeleteBy(ctx context.Context, options ...storage.Option) error
}

// EmployeeStore reads employee batches. Writes go exclusively through
// CompanyStore.SaveWithEmployees; there is no partial-employee-update path.
type EmployeeStore interface {
	// Find retrieves employees matching the given options.
	Find(ctx context.Context, options ...storage.Option) ([]Employee, error)

	// Count returns the number of matching employees.
	Count(ctx context.Context, options ...storage.Option) (int64, error)
}
