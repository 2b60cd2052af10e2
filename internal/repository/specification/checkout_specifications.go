package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy filters rows by their owning user.
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByStatus filters by a status column value.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStatuses filters by any of the given status values.
type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// ForPlan filters by plan id.
type ForPlan struct {
	PlanID uuid.UUID
}

func (s ForPlan) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plan_id = ?", s.PlanID)
}

// ByCode matches a promo code case-insensitively. Codes are stored uppercase,
// so the lookup uppercases the input instead of using ILIKE.
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("code = ?", strings.ToUpper(strings.TrimSpace(s.Code)))
}

// ActiveOnly keeps rows with is_active = true.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
