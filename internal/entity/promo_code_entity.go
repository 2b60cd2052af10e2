package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// PromoCode is a named discount rule with eligibility constraints and an
// optional usage cap. UsedCount is incremented exactly once per completed
// checkout that consumed the code.
type PromoCode struct {
	Id            uuid.UUID
	Code          string // stored uppercase, matched case-insensitively
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MaxDiscount   *decimal.Decimal
	MinPurchase   *decimal.Decimal
	ValidFrom     time.Time
	ValidUntil    *time.Time
	MaxUses       *int
	UsedCount     int
	IsActive      bool

	// Empty list means the code applies to all plans.
	AllowedPlanIds []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the code's plan allow-list admits the plan.
func (p *PromoCode) AppliesTo(planId uuid.UUID) bool {
	if len(p.AllowedPlanIds) == 0 {
		return true
	}
	for _, id := range p.AllowedPlanIds {
		if id == planId {
			return true
		}
	}
	return false
}
