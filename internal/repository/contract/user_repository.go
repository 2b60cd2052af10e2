package contract

import (
	"context"

	"membership-be/internal/entity"
	"membership-be/internal/repository/specification"
)

// UserRepository is read-only: identity is owned by the account service and
// consulted here only to prefill billing contact details.
type UserRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
