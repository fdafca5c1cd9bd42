// Package service contains the business logic for the Exercise Tracker API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"exercise-tracker/internal/domain"
)

// validate is the shared validator instance. validator.Validate caches struct
// metadata and is safe for concurrent use, so one instance serves all services.
var validate = validator.New()

// checkStruct runs struct-tag validation on v and converts the first failure
// into a wrapped domain.ErrValidation with a readable field message, e.g.
// "validation error: username failed on the 'max' rule".
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed on the '%s' rule", domain.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
