package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// newValidator returns a validator that reports JSON field names.
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

// validationErrors converts a validator error into a list of field errors.
// It returns nil when err is not a validation failure.
func validationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()),
		})
	}
	return details
}

// validateBody runs v on payload and writes a 400 response when it fails.
// It returns true when the payload is valid.
func validateBody(c *fiber.Ctx, v *validator.Validate, payload interface{}) (bool, error) {
	err := v.Struct(payload)
	if err == nil {
		return true, nil
	}
	details := validationErrors(err)
	if details == nil {
		log.Printf("Unexpected validator failure: %v", err)
		return false, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": details,
	})
}

// ErrorHandler renders every error returned by a handler as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
		})
	}
	log.Printf("Unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
