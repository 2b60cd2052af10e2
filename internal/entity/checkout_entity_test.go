package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSessionStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from SessionStatus
		to   SessionStatus
		want bool
	}{
		{"pending to completed", SessionStatusPending, SessionStatusCompleted, true},
		{"pending to expired", SessionStatusPending, SessionStatusExpired, true},
		{"completed to pending", SessionStatusCompleted, SessionStatusPending, false},
		{"completed to expired", SessionStatusCompleted, SessionStatusExpired, false},
		{"expired to pending", SessionStatusExpired, SessionStatusPending, false},
		{"expired to completed", SessionStatusExpired, SessionStatusCompleted, false},
		{"pending to pending", SessionStatusPending, SessionStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.CanTransitionTo(tt.to)
			if got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCheckoutSessionPricingInvariant(t *testing.T) {
	s := &CheckoutSession{
		OriginalPrice:  decimal.NewFromInt(1000),
		DiscountAmount: decimal.Zero,
		FinalPrice:     decimal.NewFromInt(1000),
	}

	s.ApplyDiscount(uuid.New(), decimal.NewFromInt(150))
	assert.True(t, s.FinalPrice.Equal(decimal.NewFromInt(850)))
	assert.True(t, s.OriginalPrice.Sub(s.DiscountAmount).Equal(s.FinalPrice))
	assert.NotNil(t, s.PromoCodeId)

	s.ClearDiscount()
	assert.Nil(t, s.PromoCodeId)
	assert.True(t, s.DiscountAmount.IsZero())
	assert.True(t, s.FinalPrice.Equal(s.OriginalPrice))
}

func TestMarkCompletedIsTerminal(t *testing.T) {
	now := time.Now()
	s := &CheckoutSession{Status: SessionStatusPending}

	assert.NoError(t, s.MarkCompleted(now))
	assert.Equal(t, SessionStatusCompleted, s.Status)
	assert.NotNil(t, s.CompletedAt)

	assert.Error(t, s.MarkCompleted(now))
	assert.Error(t, s.MarkExpired())
}

func TestMarkExpiredIsTerminal(t *testing.T) {
	s := &CheckoutSession{Status: SessionStatusPending}

	assert.NoError(t, s.MarkExpired())
	assert.Equal(t, SessionStatusExpired, s.Status)

	assert.Error(t, s.MarkCompleted(time.Now()))
	assert.Error(t, s.MarkExpired())
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	s := &CheckoutSession{Status: SessionStatusPending, ExpiresAt: now.Add(30 * time.Minute)}

	assert.False(t, s.IsExpired(now))
	assert.True(t, s.IsExpired(now.Add(31*time.Minute)))

	// Terminal states never report expired.
	s.Status = SessionStatusCompleted
	assert.False(t, s.IsExpired(now.Add(31*time.Minute)))
}

func TestSubscriptionIsEntitling(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name   string
		status SubscriptionStatus
		endsAt *time.Time
		want   bool
	}{
		{"active no end date", SubscriptionStatusActive, nil, true},
		{"active future end", SubscriptionStatusActive, &future, true},
		{"active past end", SubscriptionStatusActive, &past, false},
		{"trial no end date", SubscriptionStatusTrial, nil, true},
		{"canceled", SubscriptionStatusCanceled, nil, false},
		{"expired", SubscriptionStatusExpired, &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &UserSubscription{Status: tt.status, EndsAt: tt.endsAt}
			assert.Equal(t, tt.want, s.IsEntitling(now))
		})
	}
}
