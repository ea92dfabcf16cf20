package persistence

import (
	"fmt"
	"strings"

	"github.com/firmscope/firmscope/internal/database"
	"gorm.io/gorm"
)

// AutoMigrate runs GORM auto migration for all models.
func AutoMigrate(db database.Database) error {
	if err := db.GORM().AutoMigrate(
		&CompanyModel{},
		&EmployeeModel{},
	); err != nil {
		return err
	}
	return postMigrate(db)
}

// postMigrate creates the employee FK constraint with ON DELETE CASCADE on
// PostgreSQL. SQLite does not enforce it; the stores delete employee batches
// explicitly inside the same transaction instead. Idempotent: safe to run on
// every startup.
func postMigrate(db database.Database) error {
	if !db.IsPostgres() {
		return nil
	}

	gdb := db.GORM()

	stmts := []string{
		`ALTER TABLE employees DROP CONSTRAINT IF EXISTS fk_employees_company_id`,
		`ALTER TABLE employees ADD CONSTRAINT fk_employees_company_id
			FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE`,
	}
	for _, stmt := range stmts {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("employees company_id constraint: %w", err)
		}
	}

	return nil
}

// allModels returns every GORM model that AutoMigrate manages.
func allModels() []interface{} {
	return []interface{}{
		&CompanyModel{},
		&EmployeeModel{},
	}
}

// ValidateSchema verifies every GORM model field has a corresponding column
// in the database. Returns an error listing any missing columns.
func ValidateSchema(db database.Database) error {
	gdb := db.GORM()
	migrator := gdb.Migrator()

	var missing []string
	for _, model := range allModels() {
		stmt := &gorm.Statement{DB: gdb}
		if err := stmt.Parse(model); err != nil {
			return fmt.Errorf("parse model schema: %w", err)
		}

		columnTypes, err := migrator.ColumnTypes(model)
		if err != nil {
			return fmt.Errorf("get column types for %s: %w", stmt.Table, err)
		}

		actual := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			actual[ct.Name()] = true
		}

		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" || field.DBName == "-" {
				continue
			}
			if !actual[field.DBName] {
				missing = append(missing, stmt.Table+"."+field.DBName)
			}
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("schema validation failed, missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
