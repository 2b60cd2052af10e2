package contract

import (
	"context"

	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.UserSubscription) error
	Update(ctx context.Context, subscription *entity.UserSubscription) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserSubscription, error)
}
