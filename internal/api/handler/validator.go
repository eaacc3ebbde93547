package handler

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/badgeforge/issuer-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures surface as domain.FieldErrors keyed by the JSON field name, which
// the central error handler renders as a structured rejection payload.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report errors under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("telephone", func(fl validator.FieldLevel) bool {
		return domain.ValidTelephone(fl.Field().String())
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			fields := make(domain.FieldErrors, len(ve))
			for _, fe := range ve {
				fields[fieldPath(fe)] = fieldMessage(fe)
			}
			return fields
		}
		return err
	}
	return nil
}

// fieldPath strips the top-level struct name from the error namespace, so a
// nested failure reads "recipient.identity" rather than
// "issueAssertionRequest.recipient.identity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// fieldMessage converts a single ValidationError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "telephone":
		return "must be a valid E.164 telephone number"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datauri":
		return "must be a base64 data URI"
	default:
		return "failed validation (" + fe.Tag() + ")"
	}
}
