package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingInterval string

const (
	BillingIntervalMonth    BillingInterval = "month"
	BillingIntervalYear     BillingInterval = "year"
	BillingIntervalLifetime BillingInterval = "lifetime"
)

// Plan is a purchasable offering. Read-only to the checkout core;
// administrative edits happen elsewhere.
type Plan struct {
	Id              uuid.UUID
	Name            string
	Slug            string
	Description     string
	Price           decimal.Decimal
	Currency        string
	BillingInterval BillingInterval
	TrialDays       int
	IsActive        bool
	SortOrder       int

	// Bundled features, ordered by the feature's sort order.
	Features []PlanFeature

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFeature reports whether the plan bundles the feature identified by slug.
func (p *Plan) HasFeature(slug string) (PlanFeature, bool) {
	for _, pf := range p.Features {
		if pf.Feature.Slug == slug {
			return pf, true
		}
	}
	return PlanFeature{}, false
}

// Feature is a named capability in the master catalog.
type Feature struct {
	Id          uuid.UUID
	Slug        string
	Name        string
	Description string
	IsActive    bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlanFeature attaches a feature to a plan with an optional plan-specific
// value, e.g. a numeric cap ("20") or a percentage.
type PlanFeature struct {
	PlanId    uuid.UUID
	FeatureId uuid.UUID
	Value     *string
	Feature   Feature
}
