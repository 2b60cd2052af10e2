package contract

import (
	"context"

	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PromoCodeRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromoCode, error)

	// IncrementUsage bumps used_count by one atomically. Called exactly once
	// per checkout completion that consumed the code, inside the completion
	// transaction.
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}
