package dto

import (
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Requests ---

type CreateSessionRequest struct {
	PlanId    uuid.UUID `json:"plan_id" validate:"required"`
	PromoCode *string   `json:"promo_code,omitempty" validate:"omitempty,min=1,max=100"`
}

type ApplyPromoRequest struct {
	Code string `json:"code" validate:"required,min=1,max=100"`
}

type BillingDetailsRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=255"`
	LastName     string `json:"last_name" validate:"required,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=50"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"omitempty,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	PostalCode   string `json:"postal_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
}

type CompleteSessionRequest struct {
	Billing       BillingDetailsRequest `json:"billing" validate:"required"`
	PaymentMethod *string               `json:"payment_method,omitempty" validate:"omitempty,min=1,max=255"`
}

func (r *BillingDetailsRequest) ToContact() entity.BillingContact {
	return entity.BillingContact{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
	}
}

// --- Responses ---

type SessionResponse struct {
	Id             uuid.UUID       `json:"id"`
	PlanId         uuid.UUID       `json:"plan_id"`
	PromoCodeId    *uuid.UUID      `json:"promo_code_id,omitempty"`
	OriginalPrice  decimal.Decimal `json:"original_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	ExpiresAt      time.Time       `json:"expires_at"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewSessionResponse(s *entity.CheckoutSession) *SessionResponse {
	return &SessionResponse{
		Id:             s.Id,
		PlanId:         s.PlanId,
		PromoCodeId:    s.PromoCodeId,
		OriginalPrice:  s.OriginalPrice,
		DiscountAmount: s.DiscountAmount,
		FinalPrice:     s.FinalPrice,
		Currency:       s.Currency,
		Status:         string(s.Status),
		ExpiresAt:      s.ExpiresAt,
		CompletedAt:    s.CompletedAt,
		CreatedAt:      s.CreatedAt,
	}
}

// PromoDecisionResponse mirrors the rule engine's decision for previews and
// promo application.
type PromoDecisionResponse struct {
	Valid          bool            `json:"valid"`
	Reason         string          `json:"reason,omitempty"`
	Message        string          `json:"message,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
}
