package mapper

import (
	"membership-be/internal/entity"
	"membership-be/internal/model"

	"gorm.io/datatypes"
)

type CheckoutMapper struct{}

func NewCheckoutMapper() *CheckoutMapper {
	return &CheckoutMapper{}
}

func (m *CheckoutMapper) ToEntity(s *model.CheckoutSession) *entity.CheckoutSession {
	if s == nil {
		return nil
	}
	return &entity.CheckoutSession{
		Id:             s.Id,
		UserId:         s.UserId,
		PlanId:         s.PlanId,
		PromoCodeId:    s.PromoCodeId,
		OriginalPrice:  s.OriginalPrice,
		DiscountAmount: s.DiscountAmount,
		FinalPrice:     s.FinalPrice,
		Currency:       s.Currency,
		Status:         entity.SessionStatus(s.Status),
		Billing: entity.BillingContact{
			FirstName:    s.BillingFirstName,
			LastName:     s.BillingLastName,
			Email:        s.BillingEmail,
			Phone:        s.BillingPhone,
			AddressLine1: s.BillingAddressLine1,
			AddressLine2: s.BillingAddressLine2,
			City:         s.BillingCity,
			State:        s.BillingState,
			PostalCode:   s.BillingPostalCode,
			Country:      s.BillingCountry,
		},
		ChargeAudit: []byte(s.ChargeAudit),
		ExpiresAt:   s.ExpiresAt,
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *CheckoutMapper) ToModel(s *entity.CheckoutSession) *model.CheckoutSession {
	if s == nil {
		return nil
	}
	return &model.CheckoutSession{
		Id:                  s.Id,
		UserId:              s.UserId,
		PlanId:              s.PlanId,
		PromoCodeId:         s.PromoCodeId,
		OriginalPrice:       s.OriginalPrice,
		DiscountAmount:      s.DiscountAmount,
		FinalPrice:          s.FinalPrice,
		Currency:            s.Currency,
		Status:              string(s.Status),
		BillingFirstName:    s.Billing.FirstName,
		BillingLastName:     s.Billing.LastName,
		BillingEmail:        s.Billing.Email,
		BillingPhone:        s.Billing.Phone,
		BillingAddressLine1: s.Billing.AddressLine1,
		BillingAddressLine2: s.Billing.AddressLine2,
		BillingCity:         s.Billing.City,
		BillingState:        s.Billing.State,
		BillingPostalCode:   s.Billing.PostalCode,
		BillingCountry:      s.Billing.Country,
		ChargeAudit:         datatypes.JSON(s.ChargeAudit),
		ExpiresAt:           s.ExpiresAt,
		CompletedAt:         s.CompletedAt,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
