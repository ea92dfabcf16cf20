// Package company provides domain types for cached company research records.
package company

import (
	"strings"
	"time"
)

// SizeBucket classifies a company by employee head count.
type SizeBucket string

// SizeBucket values.
const (
	SizeMicro      SizeBucket = "micro"      // 1-9
	SizeSmall      SizeBucket = "small"      // 10-49
	SizeMedium     SizeBucket = "medium"     // 50-249
	SizeLarge      SizeBucket = "large"      // 250-999
	SizeEnterprise SizeBucket = "enterprise" // 1000+
)

// BucketForHeadCount maps an employee head count to a SizeBucket.
// Returns "" for a non-positive count (unknown).
func BucketForHeadCount(n int) SizeBucket {
	switch {
	case n <= 0:
		return ""
	case n < 10:
		return SizeMicro
	case n < 50:
		return SizeSmall
	case n < 250:
		return SizeMedium
	case n < 1000:
		return SizeLarge
	default:
		return SizeEnterprise
	}
}

// Company is a cached research record for a single company. It is created on
// first successful enrichment, overwritten wholesale on explicit refresh, and
// removed only by an explicit forget. Fields the AI could not determine stay
// empty rather than being fabricated.
type Company struct {
	id          int64
	name        string
	context     string
	industry    string
	headCount   int
	sizeBucket  SizeBucket
	domain      string
	contact     string
	refreshedAt time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCompany creates a company record for a new cache entry (not yet persisted).
// The context string disambiguates same-named companies and is part of the
// cache key together with the name.
func NewCompany(name, context string) Company {
	now := time.Now()
	return Company{
		name:      strings.TrimSpace(name),
		context:   strings.TrimSpace(context),
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructCompany recreates a company from persistence (for store use).
func ReconstructCompany(
	id int64,
	name string,
	context string,
	industry string,
	headCount int,
	domain string,
	contact string,
	refreshedAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) Company {
	return Company{
		id:          id,
		name:        name,
		context:     context,
		industry:    industry,
		headCount:   headCount,
		sizeBucket:  BucketForHeadCount(headCount),
		domain:      domain,
		contact:     contact,
		refreshedAt: refreshedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the company's database identifier (0 when not yet persisted).
func (c Company) ID() int64 { return c.id }

// Name returns the company name as entered by the user.
func (c Company) Name() string { return c.name }

// NormalizedName returns the cache-lookup form of the name.
func (c Company) NormalizedName() string { return Normalize(c.name) }

// Context returns the disambiguating research context ("" when none).
func (c Company) Context() string { return c.context }

// NormalizedContext returns the cache-lookup form of the context.
func (c Company) NormalizedContext() string { return Normalize(c.context) }

// Industry returns the industry, or "" when unknown.
func (c Company) Industry() string { return c.industry }

// HeadCount returns the employee head count, or 0 when unknown.
func (c Company) HeadCount() int { return c.headCount }

// SizeBucket returns the size classification derived from the head count.
func (c Company) SizeBucket() SizeBucket { return c.sizeBucket }

// Domain returns the company web domain, or "" when unknown.
func (c Company) Domain() string { return c.domain }

// ContactEmail returns the general contact email, or "" when unknown.
func (c Company) ContactEmail() string { return c.contact }

// RefreshedAt returns the time of the last successful enrichment.
func (c Company) RefreshedAt() time.Time { return c.refreshedAt }

// CreatedAt returns the record creation time.
func (c Company) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last record update time.
func (c Company) UpdatedAt() time.Time { return c.updatedAt }

// WithProfile returns a copy with the enriched profile fields applied and the
// refreshed-at timestamp set. Empty profile fields clear the stored values:
// a refresh overwrites the record wholesale rather than merging.
func (c Company) WithProfile(industry string, headCount int, domain, contact string, refreshedAt time.Time) Company {
	c.industry = strings.TrimSpace(industry)
	c.headCount = headCount
	c.sizeBucket = BucketForHeadCount(headCount)
	c.domain = strings.TrimSpace(domain)
	c.contact = strings.TrimSpace(contact)
	c.refreshedAt = refreshedAt
	c.updatedAt = time.Now()
	return c
}
