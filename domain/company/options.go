package company

import "github.com/firmscope/firmscope/domain/storage"

// WithNormalizedName filters by the "name_normalized" column. The value is
// normalized before matching so callers can pass raw user input.
func WithNormalizedName(name string) storage.Option {
	return storage.WithCondition("name_normalized", Normalize(name))
}

// WithNormalizedContext filters by the "context_normalized" column.
func WithNormalizedContext(context string) storage.Option {
	return storage.WithCondition("context_normalized", Normalize(context))
}

// WithCacheKey filters by the full cache key: normalized name plus
// normalized context.
func WithCacheKey(name, context string) []storage.Option {
	return []storage.Option{
		WithNormalizedName(name),
		WithNormalizedContext(context),
	}
}

// WithCompanyID filters by the "company_id" column.
func WithCompanyID(id int64) storage.Option {
	return storage.WithCondition("company_id", id)
}

// WithIndustry filters by the "industry" column.
func WithIndustry(industry string) storage.Option {
	return storage.WithCondition("industry", industry)
}
