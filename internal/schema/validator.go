package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jricekitchen/order-backend/internal/models"
)

var nameRe = regexp.MustCompile(NamePattern)

// Validator enforces the form schema on submitted input. Everything past this
// boundary assumes field shapes are valid.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the custom name rule registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// letters and spaces only, matching the form's name pattern
	_ = v.RegisterValidation("fullname", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// ValidateInput checks one submission against the schema. The returned error is
// user-readable and names the offending fields.
func (v *Validator) ValidateInput(in models.OrderInput) error {
	err := v.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))
}
