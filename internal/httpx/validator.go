package httpx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the validate tags on s and returns one detail per failed field.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, fe := range validationErrors {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{Field: field, Message: message})
	}

	return details
}
