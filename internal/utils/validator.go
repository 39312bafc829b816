// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var usernamePattern = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

func init() {
	validate = validator.New()
	validate.RegisterValidation("username", validateUsername)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Validator exposes the shared instance so gin's binding can reuse the custom tags.
func Validator() *validator.Validate {
	return validate
}

func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()

	// Username should be letters, digits, dots, dashes and underscores, 1-50 characters
	if len(username) < 1 || len(username) > 50 {
		return false
	}

	return usernamePattern.MatchString(username)
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "lte":
		return e.Field() + " must be less than or equal to " + e.Param()
	case "gtefield":
		return e.Field() + " must not be less than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "username":
		return "Username may only contain letters, numbers, dots, dashes and underscores"
	default:
		return e.Field() + " is invalid"
	}
}
