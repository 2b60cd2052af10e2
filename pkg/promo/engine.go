// Package promo evaluates promo-code discount rules. Evaluation is pure:
// the caller looks the code up and persists any resulting state.
package promo

import (
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reason identifies why a code was rejected. Reasons are machine-readable so
// callers can surface the exact failure to the user.
type Reason string

const (
	ReasonNotFound        Reason = "not_found"
	ReasonInactive        Reason = "inactive"
	ReasonNotYetValid     Reason = "not_yet_valid"
	ReasonExpired         Reason = "expired"
	ReasonExhausted       Reason = "exhausted"
	ReasonPlanNotEligible Reason = "plan_not_eligible"
	ReasonBelowMinimum    Reason = "below_minimum"
)

// Message returns the user-facing text for a rejection reason.
func (r Reason) Message() string {
	switch r {
	case ReasonNotFound:
		return "promo code not found"
	case ReasonInactive:
		return "promo code is no longer active"
	case ReasonNotYetValid:
		return "promo code is not valid yet"
	case ReasonExpired:
		return "promo code has expired"
	case ReasonExhausted:
		return "promo code usage limit reached"
	case ReasonPlanNotEligible:
		return "promo code does not apply to this plan"
	case ReasonBelowMinimum:
		return "purchase amount is below the promo code minimum"
	default:
		return "promo code is not valid"
	}
}

// Decision is the outcome of evaluating a code against a plan and price.
type Decision struct {
	Valid          bool
	Reason         Reason
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
}

func reject(reason Reason, price decimal.Decimal) Decision {
	return Decision{
		Valid:          false,
		Reason:         reason,
		DiscountAmount: decimal.Zero,
		FinalPrice:     price,
	}
}

var oneHundred = decimal.NewFromInt(100)

// Evaluate runs the rule chain against a looked-up code. A nil code means the
// lookup missed. Each eligibility step short-circuits; the discount is then
// computed with decimal arithmetic, capped at MaxDiscount when set, and
// finally clamped so it never exceeds the price.
func Evaluate(code *entity.PromoCode, planId uuid.UUID, price decimal.Decimal, now time.Time) Decision {
	if code == nil {
		return reject(ReasonNotFound, price)
	}
	if !code.IsActive {
		return reject(ReasonInactive, price)
	}
	if now.Before(code.ValidFrom) {
		return reject(ReasonNotYetValid, price)
	}
	if code.ValidUntil != nil && now.After(*code.ValidUntil) {
		return reject(ReasonExpired, price)
	}
	if code.MaxUses != nil && code.UsedCount >= *code.MaxUses {
		return reject(ReasonExhausted, price)
	}
	if !code.AppliesTo(planId) {
		return reject(ReasonPlanNotEligible, price)
	}
	if code.MinPurchase != nil && price.LessThan(*code.MinPurchase) {
		return reject(ReasonBelowMinimum, price)
	}

	var discount decimal.Decimal
	switch code.DiscountType {
	case entity.DiscountTypePercentage:
		discount = price.Mul(code.DiscountValue).Div(oneHundred).Round(2)
	default:
		discount = code.DiscountValue
	}

	if code.MaxDiscount != nil && discount.GreaterThan(*code.MaxDiscount) {
		discount = *code.MaxDiscount
	}
	// Final price can never go negative.
	if discount.GreaterThan(price) {
		discount = price
	}

	return Decision{
		Valid:          true,
		DiscountAmount: discount,
		FinalPrice:     price.Sub(discount),
	}
}
