package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate runs struct validation and returns a field-to-message map, empty
// when the value is valid.
func Validate(v any) map[string]string {
	errs := make(map[string]string)
	if err := validate.Struct(v); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs[fe.Field()] = fe.Error()
		}
	}
	return errs
}
