package promo

import (
	"testing"
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	planId  = uuid.New()
	otherId = uuid.New()
	now     = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func activeCode() *entity.PromoCode {
	return &entity.PromoCode{
		Id:            uuid.New(),
		Code:          "SPRING20",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: dec(20),
		ValidFrom:     now.Add(-24 * time.Hour),
		IsActive:      true,
	}
}

func TestEvaluateRejections(t *testing.T) {
	expired := now.Add(-time.Hour)
	notYet := now.Add(time.Hour)
	maxUses := 5
	minPurchase := dec(500)

	tests := []struct {
		name   string
		mutate func(*entity.PromoCode) *entity.PromoCode
		price  decimal.Decimal
		reason Reason
	}{
		{
			name:   "missing code",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { return nil },
			price:  dec(1000),
			reason: ReasonNotFound,
		},
		{
			name:   "inactive",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.IsActive = false; return c },
			price:  dec(1000),
			reason: ReasonInactive,
		},
		{
			name:   "not yet valid",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.ValidFrom = notYet; return c },
			price:  dec(1000),
			reason: ReasonNotYetValid,
		},
		{
			name:   "expired",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.ValidUntil = &expired; return c },
			price:  dec(1000),
			reason: ReasonExpired,
		},
		{
			name:   "exhausted",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.MaxUses = &maxUses; c.UsedCount = 5; return c },
			price:  dec(1000),
			reason: ReasonExhausted,
		},
		{
			name:   "plan not eligible",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.AllowedPlanIds = []uuid.UUID{otherId}; return c },
			price:  dec(1000),
			reason: ReasonPlanNotEligible,
		},
		{
			name:   "below minimum",
			mutate: func(c *entity.PromoCode) *entity.PromoCode { c.MinPurchase = &minPurchase; return c },
			price:  dec(100),
			reason: ReasonBelowMinimum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.mutate(activeCode()), planId, tt.price, now)
			assert.False(t, d.Valid)
			assert.Equal(t, tt.reason, d.Reason)
			assert.True(t, d.DiscountAmount.IsZero())
			assert.True(t, d.FinalPrice.Equal(tt.price), "rejection must not change the price")
		})
	}
}

func TestEvaluatePercentageDiscount(t *testing.T) {
	d := Evaluate(activeCode(), planId, dec(1000), now)

	assert.True(t, d.Valid)
	assert.True(t, d.DiscountAmount.Equal(dec(200)))
	assert.True(t, d.FinalPrice.Equal(dec(800)))
}

func TestEvaluatePercentageCappedAtMaxDiscount(t *testing.T) {
	code := activeCode()
	cap := dec(150)
	code.MaxDiscount = &cap

	// 20% of 1000 is 200, capped at 150.
	d := Evaluate(code, planId, dec(1000), now)

	assert.True(t, d.Valid)
	assert.True(t, d.DiscountAmount.Equal(dec(150)))
	assert.True(t, d.FinalPrice.Equal(dec(850)))
}

func TestEvaluateFixedDiscountClampedToPrice(t *testing.T) {
	code := activeCode()
	code.DiscountType = entity.DiscountTypeFixed
	code.DiscountValue = dec(500)

	d := Evaluate(code, planId, dec(100), now)

	assert.True(t, d.Valid)
	assert.True(t, d.DiscountAmount.Equal(dec(100)))
	assert.True(t, d.FinalPrice.IsZero())
}

func TestEvaluateRoundsToCurrencyScale(t *testing.T) {
	code := activeCode()
	code.DiscountValue = decimal.NewFromFloat(12.5)

	// 12.5% of 99.99 = 12.49875, rounded to 12.50
	d := Evaluate(code, planId, decimal.NewFromFloat(99.99), now)

	assert.True(t, d.Valid)
	assert.True(t, d.DiscountAmount.Equal(decimal.NewFromFloat(12.50)))
	assert.True(t, d.FinalPrice.Equal(decimal.NewFromFloat(87.49)))
}

func TestEvaluateBoundaryTimestamps(t *testing.T) {
	code := activeCode()
	code.ValidFrom = now
	until := now
	code.ValidUntil = &until

	// validFrom <= now <= validUntil is inside the window.
	d := Evaluate(code, planId, dec(1000), now)
	assert.True(t, d.Valid)
}

func TestEvaluateEmptyAllowListAppliesToAllPlans(t *testing.T) {
	d := Evaluate(activeCode(), otherId, dec(1000), now)
	assert.True(t, d.Valid)
}

func TestReasonMessages(t *testing.T) {
	for _, r := range []Reason{
		ReasonNotFound, ReasonInactive, ReasonNotYetValid, ReasonExpired,
		ReasonExhausted, ReasonPlanNotEligible, ReasonBelowMinimum,
	} {
		assert.NotEmpty(t, r.Message())
	}
}
