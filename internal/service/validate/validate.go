// Package validate adapts ozzo-validation results to domain validation errors.
package validate

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

// Struct validates structPtr with the given field rules. Field errors come
// back as a *domain.ValidationError sorted by field name; fields are named
// after their json tags.
func Struct(structPtr any, fields ...*validation.FieldRules) error {
	err := validation.ValidateStruct(structPtr, fields...)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		out = append(out, domain.FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })

	return domain.NewValidationErrors(out)
}
