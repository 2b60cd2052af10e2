package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Plan struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Slug            string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'USD'"`
	BillingInterval string          `gorm:"type:varchar(20);not null"` // month, year, lifetime
	TrialDays       int             `gorm:"default:0"`
	IsActive        bool            `gorm:"default:true"`
	SortOrder       int             `gorm:"default:0"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`

	// Relations
	Features []*PlanFeature `gorm:"foreignKey:PlanId"`
}

func (Plan) TableName() string {
	return "plans"
}

type PlanFeature struct {
	PlanId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FeatureId uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value     *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"default:now()"`

	Feature *Feature `gorm:"foreignKey:FeatureId"`
}

func (PlanFeature) TableName() string {
	return "plan_features"
}
