package persistence

import (
	"context"
	"fmt"

	"github.com/firmscope/firmscope/domain/company"
	"github.com/firmscope/firmscope/domain/storage"
	"github.com/firmscope/firmscope/internal/database"
	"gorm.io/gorm"
)

// CompanyStore implements company.CompanyStore using GORM.
type CompanyStore struct {
	database.Repository[company.Company, CompanyModel]
}

// NewCompanyStore creates a new CompanyStore.
func NewCompanyStore(db database.Database) CompanyStore {
	return CompanyStore{
		Repository: database.NewRepository[company.Company, CompanyModel](db, CompanyMapper{}, "company"),
	}
}

// Save creates or updates a company.
func (s CompanyStore) Save(ctx context.Context, c company.Company) (company.Company, error) {
	model := s.Mapper().ToModel(c)

	var result *gorm.DB
	if c.ID() == 0 {
		result = s.DB(ctx).Create(&model)
	} else {
		result = s.DB(ctx).Save(&model)
	}

	if result.Error != nil {
		return company.Company{}, fmt.Errorf("save company: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// SaveWithEmployees persists a company and its full employee batch in a
// single transaction. Any previously stored batch for the company is removed
// first, so re-enrichment supersedes employees wholesale. On any failure the
// transaction rolls back and nothing is written.
func (s CompanyStore) SaveWithEmployees(ctx context.Context, c company.Company, employees []company.Employee) (company.Company, []company.Employee, error) {
	type saved struct {
		company   CompanyModel
		employees []EmployeeModel
	}

	empMapper := EmployeeMapper{}

	result, err := database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (saved, error) {
		model := CompanyMapper{}.ToModel(c)

		var res *gorm.DB
		if model.ID == 0 {
			res = tx.Create(&model)
		} else {
			res = tx.Save(&model)
		}
		if res.Error != nil {
			return saved{}, fmt.Errorf("save company: %w", res.Error)
		}

		if err := tx.Where("company_id = ?", model.ID).Delete(&EmployeeModel{}).Error; err != nil {
			return saved{}, fmt.Errorf("clear employee batch: %w", err)
		}

		empModels := make([]EmployeeModel, 0, len(employees))
		for _, e := range company.DedupeEmployees(employees) {
			em := empMapper.ToModel(e)
			em.ID = 0
			em.CompanyID = model.ID
			empModels = append(empModels, em)
		}
		if len(empModels) > 0 {
			if err := tx.Create(&empModels).Error; err != nil {
				return saved{}, fmt.Errorf("save employee batch: %w", err)
			}
		}

		return saved{company: model, employees: empModels}, nil
	})
	if err != nil {
		return company.Company{}, nil, err
	}

	domainEmployees := make([]company.Employee, len(result.employees))
	for i, em := range result.employees {
		domainEmployees[i] = empMapper.ToDomain(em)
	}
	return s.Mapper().ToDomain(result.company), domainEmployees, nil
}

// DeleteBy removes companies matching the given options together with their
// employee batches, in one transaction. SQLite does not enforce the FK
// cascade, so employees are deleted explicitly.
func (s CompanyStore) DeleteBy(ctx context.Context, options ...storage.Option) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		var ids []int64
		db := database.ApplyConditions(tx.Model(&CompanyModel{}), options...)
		if err := db.Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("find companies for deletion: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("company_id IN ?", ids).Delete(&EmployeeModel{}).Error; err != nil {
			return fmt.Errorf("delete employee batches: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&CompanyModel{}).Error; err != nil {
			return fmt.Errorf("delete companies: %w", err)
		}
		return nil
	})
}
