package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CheckoutSession struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_pending_session,where:status = 'pending'"`
	PlanId         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_pending_session,where:status = 'pending'"`
	PromoCodeId    *uuid.UUID      `gorm:"type:uuid;index"`
	OriginalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	FinalPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending'"`

	// Billing contact (flattened, all optional until completion)
	BillingFirstName    string `gorm:"type:varchar(255)"`
	BillingLastName     string `gorm:"type:varchar(255)"`
	BillingEmail        string `gorm:"type:varchar(255)"`
	BillingPhone        string `gorm:"type:varchar(50)"`
	BillingAddressLine1 string `gorm:"type:varchar(255)"`
	BillingAddressLine2 string `gorm:"type:varchar(255)"`
	BillingCity         string `gorm:"type:varchar(100)"`
	BillingState        string `gorm:"type:varchar(100)"`
	BillingPostalCode   string `gorm:"type:varchar(20)"`
	BillingCountry      string `gorm:"type:varchar(100)"`

	// Raw gateway response kept for audit on completed sessions.
	ChargeAudit datatypes.JSON `gorm:"type:jsonb"`

	ExpiresAt   time.Time `gorm:"not null;index"`
	CompletedAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CheckoutSession) TableName() string {
	return "checkout_sessions"
}
