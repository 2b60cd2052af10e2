package contract

import (
	"context"

	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"
)

type CheckoutSessionRepository interface {
	Create(ctx context.Context, session *entity.CheckoutSession) error
	Update(ctx context.Context, session *entity.CheckoutSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error)
}
