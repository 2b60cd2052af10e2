package mapper

import (
	"membership-be/internal/entity"
	"membership-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.UserSubscription) *entity.UserSubscription {
	if s == nil {
		return nil
	}
	return &entity.UserSubscription{
		Id:             s.Id,
		UserId:         s.UserId,
		PlanId:         s.PlanId,
		Status:         entity.SubscriptionStatus(s.Status),
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		TrialEndsAt:    s.TrialEndsAt,
		AutoRenew:      s.AutoRenew,
		CancelReason:   s.CancelReason,
		CanceledAt:     s.CanceledAt,
		PromoCodeId:    s.PromoCodeId,
		DiscountAmount: s.DiscountAmount,
		PaymentMethod:  s.PaymentMethod,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.UserSubscription) *model.UserSubscription {
	if s == nil {
		return nil
	}
	return &model.UserSubscription{
		Id:             s.Id,
		UserId:         s.UserId,
		PlanId:         s.PlanId,
		Status:         string(s.Status),
		StartsAt:       s.StartsAt,
		EndsAt:         s.EndsAt,
		TrialEndsAt:    s.TrialEndsAt,
		AutoRenew:      s.AutoRenew,
		CancelReason:   s.CancelReason,
		CanceledAt:     s.CanceledAt,
		PromoCodeId:    s.PromoCodeId,
		DiscountAmount: s.DiscountAmount,
		PaymentMethod:  s.PaymentMethod,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
