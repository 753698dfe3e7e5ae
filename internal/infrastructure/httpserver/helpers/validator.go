package helpers

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validator lets c.Validate run a DTO's own ozzo rules.
type Validator struct{}

func (Validator) Validate(i any) error {
	if v, ok := i.(validation.Validatable); ok {
		return v.Validate()
	}
	return nil
}
