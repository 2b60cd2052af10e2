package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserSubscription struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// Partial unique index backs the at-most-one-entitling-subscription
	// invariant: concurrent activations for the same user cannot both insert.
	UserId      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_entitling_subscription,where:status IN ('active','trial')"`
	PlanId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null"` // trial, active, canceled, expired
	StartsAt    time.Time `gorm:"not null"`
	EndsAt      *time.Time
	TrialEndsAt *time.Time
	AutoRenew   bool `gorm:"default:true"`

	CancelReason *string `gorm:"type:text"`
	CanceledAt   *time.Time

	PromoCodeId    *uuid.UUID       `gorm:"type:uuid"`
	DiscountAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentMethod  *string          `gorm:"type:varchar(100)"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserSubscription) TableName() string {
	return "user_subscriptions"
}
