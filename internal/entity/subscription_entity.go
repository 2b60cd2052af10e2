package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

// UserSubscription is an activation record. At most one subscription per user
// may be trial or active at any time; activating a new one retires the old in
// the same transaction.
type UserSubscription struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	PlanId      uuid.UUID
	Status      SubscriptionStatus
	StartsAt    time.Time
	EndsAt      *time.Time
	TrialEndsAt *time.Time
	AutoRenew   bool

	CancelReason *string
	CanceledAt   *time.Time

	// Audit trail of the checkout that produced this subscription.
	PromoCodeId    *uuid.UUID
	DiscountAmount *decimal.Decimal
	PaymentMethod  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsEntitling reports whether the subscription currently grants access:
// trial or active, with no end date or an end date still in the future.
func (s *UserSubscription) IsEntitling(now time.Time) bool {
	if s.Status != SubscriptionStatusActive && s.Status != SubscriptionStatusTrial {
		return false
	}
	return s.EndsAt == nil || s.EndsAt.After(now)
}

// Cancel transitions the subscription to canceled with the given reason.
// Canceling an already-canceled subscription is a no-op.
func (s *UserSubscription) Cancel(reason string, now time.Time) {
	if s.Status == SubscriptionStatusCanceled {
		return
	}
	s.Status = SubscriptionStatusCanceled
	s.CancelReason = &reason
	s.CanceledAt = &now
	s.AutoRenew = false
}
