package persistence

import (
	"github.com/firmscope/firmscope/domain/company"
	"github.com/firmscope/firmscope/internal/database"
)

// EmployeeStore implements company.EmployeeStore using GORM. It is read-only:
// employee writes go through CompanyStore.SaveWithEmployees so batches stay
// tied to their enrichment event.
type EmployeeStore struct {
	database.Repository[company.Employee, EmployeeModel]
}

// NewEmployeeStore creates a new EmployeeStore.
func NewEmployeeStore(db database.Database) EmployeeStore {
	return EmployeeStore{
		Repository: database.NewRepository[company.Employee, EmployeeModel](db, EmployeeMapper{}, "employee"),
	}
}
