package shapes

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError signals a single invalid request field. When several fields
// are invalid, the first one in struct declaration order is reported.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names, since those are what callers sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// gt=0 alone lets +Inf through; JSON cannot encode Inf or NaN, but the
	// compute functions must never see either regardless of transport.
	err := validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return !math.IsInf(v, 0) && !math.IsNaN(v)
	})
	if err != nil {
		panic(fmt.Sprintf("registering finite rule: %v", err))
	}
}

// ValidateRequest checks a decoded shape request against its struct tags and
// converts the first failure into a ValidationError.
func ValidateRequest(req any) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: "invalid request"}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Message: messageFor(fe),
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be positive", fe.Field())
	case "finite":
		return fmt.Sprintf("%s must be a finite number", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
