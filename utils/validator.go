package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so error maps match the form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, rule := range rules {
		// Registration only fails on an empty tag or a nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			ok, _ := rule(fl.Field().String())
			return ok
		})
	}
	return v
}

func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, e := range verrs {
		if rule, ok := RuleFor(e.Tag()); ok {
			value, _ := e.Value().(string)
			if _, msg := rule(value); msg != "" {
				errs[e.Field()] = msg
				continue
			}
		}
		errs[e.Field()] = "Invalid " + e.Tag()
	}
	return errs
}
