package dto

import (
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CancelSubscriptionRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type SubscriptionResponse struct {
	Id             uuid.UUID        `json:"id"`
	PlanId         uuid.UUID        `json:"plan_id"`
	Status         string           `json:"status"`
	StartsAt       time.Time        `json:"starts_at"`
	EndsAt         *time.Time       `json:"ends_at,omitempty"`
	TrialEndsAt    *time.Time       `json:"trial_ends_at,omitempty"`
	AutoRenew      bool             `json:"auto_renew"`
	CancelReason   *string          `json:"cancel_reason,omitempty"`
	CanceledAt     *time.Time       `json:"canceled_at,omitempty"`
	DiscountAmount *decimal.Decimal `json:"discount_amount,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

func NewSubscriptionResponse(s *entity.UserSubscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		Id:             s.Id,
		PlanId:         s.PlanId,
		Status:         string(s.Status),
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		TrialEndsAt:    s.TrialEndsAt,
		AutoRenew:      s.AutoRenew,
		CancelReason:   s.CancelReason,
		CanceledAt:     s.CanceledAt,
		DiscountAmount: s.DiscountAmount,
		CreatedAt:      s.CreatedAt,
	}
}

// FeatureAccessResponse is the entitlement resolver's answer for one feature.
type FeatureAccessResponse struct {
	Slug      string  `json:"slug"`
	HasAccess bool    `json:"has_access"`
	Value     *string `json:"value,omitempty"`
}
