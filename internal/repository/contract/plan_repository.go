package contract

import (
	"context"

	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"
)

// PlanRepository is the read path of the plan catalog. Plan administration
// lives outside this core.
type PlanRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)
}
