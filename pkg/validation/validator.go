// Package validation validates request bodies and sanitizes free text
package validation

import (
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/Aidin1998/creatorhub/pkg/errors"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

// Validator wraps struct-tag validation and a strict HTML sanitizer
type Validator struct {
	validator *validator.Validate
	logger    *zap.Logger
	sanitizer *bluemonday.Policy
}

// NewValidator creates a new validator that reports fields by their JSON names
func NewValidator(logger *zap.Logger) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateCreateAsset, models.CreateAssetRequest{})

	return &Validator{
		validator: v,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// validateCreateAsset rejects negative prices; zero is a valid price.
func validateCreateAsset(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.CreateAssetRequest)
	if req.Price != nil && req.Price.IsNegative() {
		sl.ReportError(req.Price, "price", "Price", "nonnegative", "")
	}
}

// ValidateStruct validates s and returns errors.Invalid carrying one field
// error per failed rule, or nil.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Invalid.Explain("invalid request").Wrap(err)
	}

	validationErr := errors.Invalid.Explain("Request validation failed")
	for _, fe := range fieldErrs {
		validationErr = validationErr.WithField(fe.Tag(), fe.Field(), errorMessage(fe))
	}

	v.logger.Debug("Request validation failed", zap.Error(validationErr))
	return validationErr
}

// SanitizeText strips all markup from input and returns plain text
func (v *Validator) SanitizeText(input string) string {
	if input == "" {
		return input
	}
	return html.UnescapeString(v.sanitizer.Sanitize(input))
}

// errorMessage returns a human-readable message for a failed rule
func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "required_without":
		return fmt.Sprintf("%s is required when %s is empty", fe.Field(), lowerFirst(fe.Param()))
	case "nonnegative":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
