package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"membership-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the single boundary validation pass over a request
// DTO. Field constraints live as struct tags on the static request types.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := errors.As(err, &fieldErrs); ok && len(fieldErrs) > 0 {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return apperror.Validation("invalid request: %s", strings.Join(msgs, "; "))
		}
		return apperror.Validation("invalid request: %v", err)
	}
	return nil
}
