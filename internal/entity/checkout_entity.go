package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusExpired   SessionStatus = "expired"
)

// CanTransitionTo encodes the legal session state machine:
// pending -> completed, pending -> expired. Nothing else.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	return s == SessionStatusPending &&
		(next == SessionStatusCompleted || next == SessionStatusExpired)
}

// BillingContact holds the contact details captured during checkout.
type BillingContact struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// CheckoutSession is a time-boxed, price-frozen record of a user's intent to
// purchase a plan. Prices are snapshotted at creation so later plan edits
// never change what the user is asked to pay.
type CheckoutSession struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	PlanId         uuid.UUID
	PromoCodeId    *uuid.UUID
	OriginalPrice  decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
	Currency       string
	Status         SessionStatus
	Billing        BillingContact
	// Raw gateway response recorded at completion for audit.
	ChargeAudit    []byte
	ExpiresAt      time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsExpired reports whether the session's TTL has elapsed. The status flip
// itself is done lazily by readers via MarkExpired.
func (s *CheckoutSession) IsExpired(now time.Time) bool {
	return s.Status == SessionStatusPending && now.After(s.ExpiresAt)
}

// ApplyDiscount records a promo decision, keeping the pricing invariant
// finalPrice = originalPrice - discountAmount.
func (s *CheckoutSession) ApplyDiscount(promoId uuid.UUID, discount decimal.Decimal) {
	s.PromoCodeId = &promoId
	s.DiscountAmount = discount
	s.FinalPrice = s.OriginalPrice.Sub(discount)
}

// ClearDiscount resets the session back to full price.
func (s *CheckoutSession) ClearDiscount() {
	s.PromoCodeId = nil
	s.DiscountAmount = decimal.Zero
	s.FinalPrice = s.OriginalPrice
}

// MarkCompleted transitions the session to completed. Illegal from any state
// but pending.
func (s *CheckoutSession) MarkCompleted(now time.Time) error {
	if !s.Status.CanTransitionTo(SessionStatusCompleted) {
		return fmt.Errorf("illegal session transition %s -> %s", s.Status, SessionStatusCompleted)
	}
	s.Status = SessionStatusCompleted
	s.CompletedAt = &now
	return nil
}

// MarkExpired transitions the session to expired. Expired is terminal; the
// session cannot re-enter pending.
func (s *CheckoutSession) MarkExpired() error {
	if !s.Status.CanTransitionTo(SessionStatusExpired) {
		return fmt.Errorf("illegal session transition %s -> %s", s.Status, SessionStatusExpired)
	}
	s.Status = SessionStatusExpired
	return nil
}
