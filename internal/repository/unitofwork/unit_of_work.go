package unitofwork

import (
	"context"

	"membership-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin/Commit
// bound an explicit transaction; without Begin, repositories run against the
// shared connection pool. The checkout completion path relies on the
// transactional form: retiring the old subscription, creating the new one,
// bumping promo usage, and flipping the session are all-or-nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PlanRepository() contract.PlanRepository
	PromoCodeRepository() contract.PromoCodeRepository
	CheckoutSessionRepository() contract.CheckoutSessionRepository
	SubscriptionRepository() contract.SubscriptionRepository
}
