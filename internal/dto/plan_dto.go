package dto

import (
	"time"

	"membership-be/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanFeatureResponse struct {
	Slug  string  `json:"slug"`
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

type PlanResponse struct {
	Id              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Slug            string                `json:"slug"`
	Description     string                `json:"description,omitempty"`
	Price           decimal.Decimal       `json:"price"`
	Currency        string                `json:"currency"`
	BillingInterval string                `json:"billing_interval"`
	TrialDays       int                   `json:"trial_days"`
	Features        []PlanFeatureResponse `json:"features"`
	CreatedAt       time.Time             `json:"created_at"`
}

func NewPlanResponse(p *entity.Plan) *PlanResponse {
	features := make([]PlanFeatureResponse, 0, len(p.Features))
	for _, pf := range p.Features {
		features = append(features, PlanFeatureResponse{
			Slug:  pf.Feature.Slug,
			Name:  pf.Feature.Name,
			Value: pf.Value,
		})
	}
	return &PlanResponse{
		Id:              p.Id,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		Currency:        p.Currency,
		BillingInterval: string(p.BillingInterval),
		TrialDays:       p.TrialDays,
		Features:        features,
		CreatedAt:       p.CreatedAt,
	}
}
