// Package persistence provides database storage implementations.
package persistence

import "time"

// CompanyModel represents a cached company record in the database.
// The (name_normalized, context_normalized) pair is the cache key: at most
// one row exists per key.
type CompanyModel struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	Name              string     `gorm:"column:name;index;size:512"`
	NameNormalized    string     `gorm:"column:name_normalized;uniqueIndex:idx_companies_cache_key;size:512"`
	Context           string     `gorm:"column:context;size:512"`
	ContextNormalized string     `gorm:"column:context_normalized;uniqueIndex:idx_companies_cache_key;size:512"`
	Industry          *string    `gorm:"column:industry;size:255"`
	HeadCount         *int       `gorm:"column:head_count"`
	Domain            *string    `gorm:"column:domain;size:255"`
	ContactEmail      *string    `gorm:"column:contact_email;size:255"`
	RefreshedAt       *time.Time `gorm:"column:refreshed_at"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (CompanyModel) TableName() string {
	return "companies"
}

// EmployeeModel represents a discovered employee in the database.
// Rows are written only as whole batches under their company; the FK
// cascades on company deletion (enforced in-transaction for SQLite).
type EmployeeModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CompanyID  int64     `gorm:"column:company_id;index"`
	FullName   string    `gorm:"column:full_name;index;size:255"`
	Title      *string   `gorm:"column:title;size:255"`
	Department *string   `gorm:"column:department;size:255"`
	Seniority  *string   `gorm:"column:seniority;size:255"`
	Email      *string   `gorm:"column:email;size:255"`
	ProfileURL *string   `gorm:"column:profile_url;size:1024"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (EmployeeModel) TableName() string {
	return "employees"
}
