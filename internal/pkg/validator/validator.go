// Package validator adapts go-playground/validator to echo and to the apperrors taxonomy.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
)

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s-]{10,15}$`)
	contactPattern    = regexp.MustCompile(`^[0-9]{10}$`)
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the domain tags registered
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("personname", matches(personNamePattern))
	_ = v.RegisterValidation("phone", matches(phonePattern))
	_ = v.RegisterValidation("contact", matches(contactPattern))

	return &CustomValidator{validate: v}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Validate checks i and reports the first failing field as a validation error
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.Validation("body", err.Error())
	}
	fe := verrs[0]
	return apperrors.Validation(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "personname":
		return "must be 2-50 letters or spaces"
	case "phone":
		return "must be 10-15 digits, optionally with +, spaces or dashes"
	case "contact":
		return "must be exactly 10 digits"
	default:
		return "is invalid"
	}
}
