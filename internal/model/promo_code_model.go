package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromoCode struct {
	Id            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code          string           `gorm:"type:varchar(100);uniqueIndex;not null"` // stored uppercase
	DiscountType  string           `gorm:"type:varchar(20);not null"`              // percentage, fixed
	DiscountValue decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	MaxDiscount   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	MinPurchase   *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ValidFrom     time.Time        `gorm:"not null"`
	ValidUntil    *time.Time
	MaxUses       *int
	UsedCount     int       `gorm:"default:0"`
	IsActive      bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Relations
	AllowedPlans []*PromoCodePlan `gorm:"foreignKey:PromoCodeId"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}

// PromoCodePlan is the plan allow-list join table. No rows = all plans.
type PromoCodePlan struct {
	PromoCodeId uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanId      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `gorm:"default:now()"`
}

func (PromoCodePlan) TableName() string {
	return "promo_code_plans"
}
