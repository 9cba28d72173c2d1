package bundle

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/morsedb/morsedb/pkg/errors"
)

// validate is a singleton validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the bundle's structure using struct tags.
func (b *Bundle) Validate() error {
	if b == nil {
		return errors.New(errors.ErrCodeInvalidBundle, "bundle cannot be nil")
	}
	if err := validate.Struct(b); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into one coded error
// that names every failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidBundle, err, "validate bundle")
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Bundle.")
		switch e.Tag() {
		case "required", "required_without":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "excluded_with":
			msgs = append(msgs, fmt.Sprintf("%s conflicts with %s", field, e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
		}
	}
	return errors.New(errors.ErrCodeInvalidBundle, "%s", strings.Join(msgs, "; "))
}
