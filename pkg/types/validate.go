package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is shared; a validator.Validate instance caches struct
// metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every JobSpec field against its constraints and
// returns the first violation as a typed error: geometry fields map to
// ErrInvalidGeometry, category fields to ErrUnknownCategory.
func (j JobSpec) Validate() error {
	err := validate.Struct(j)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("job spec: %w", err)
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Material", "Coolant", "Tool":
		return fmt.Errorf("job spec: %s %q has no table entry: %w",
			fe.Field(), fe.Value(), ErrUnknownCategory)
	default:
		return fmt.Errorf("job spec: %s=%v violates %q: %w",
			fe.Field(), fe.Value(), fe.Tag(), ErrInvalidGeometry)
	}
}
