package mapper

import (
	"membership-be/internal/entity"
	"membership-be/internal/model"

	"github.com/google/uuid"
)

type PromoCodeMapper struct{}

func NewPromoCodeMapper() *PromoCodeMapper {
	return &PromoCodeMapper{}
}

func (m *PromoCodeMapper) ToEntity(p *model.PromoCode) *entity.PromoCode {
	if p == nil {
		return nil
	}
	var allowed []uuid.UUID
	for _, link := range p.AllowedPlans {
		allowed = append(allowed, link.PlanId)
	}
	return &entity.PromoCode{
		Id:             p.Id,
		Code:           p.Code,
		DiscountType:   entity.DiscountType(p.DiscountType),
		DiscountValue:  p.DiscountValue,
		MaxDiscount:    p.MaxDiscount,
		MinPurchase:    p.MinPurchase,
		ValidFrom:      p.ValidFrom,
		ValidUntil:     p.ValidUntil,
		MaxUses:        p.MaxUses,
		UsedCount:      p.UsedCount,
		IsActive:       p.IsActive,
		AllowedPlanIds: allowed,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *PromoCodeMapper) ToModel(p *entity.PromoCode) *model.PromoCode {
	if p == nil {
		return nil
	}
	var allowed []*model.PromoCodePlan
	for _, planId := range p.AllowedPlanIds {
		allowed = append(allowed, &model.PromoCodePlan{
			PromoCodeId: p.Id,
			PlanId:      planId,
		})
	}
	return &model.PromoCode{
		Id:            p.Id,
		Code:          p.Code,
		DiscountType:  string(p.DiscountType),
		DiscountValue: p.DiscountValue,
		MaxDiscount:   p.MaxDiscount,
		MinPurchase:   p.MinPurchase,
		ValidFrom:     p.ValidFrom,
		ValidUntil:    p.ValidUntil,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		IsActive:      p.IsActive,
		AllowedPlans:  allowed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
