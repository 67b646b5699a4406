package middleware

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oralabs/ora/internal/app/models"
)

// RegisterValidators installs custom validations on gin's binding engine.
// Call once during router setup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("category", validCategory)
	}
}

// validCategory accepts only the known curation categories
func validCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

// FormatBindingError turns a binding failure into a human-readable message.
// Non-validation errors (malformed JSON) pass through unchanged.
func FormatBindingError(err error) string {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		messages = append(messages, formatFieldError(e))
	}
	return strings.Join(messages, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "category":
		return e.Field() + " must be a known category"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
